// This package implements the command line tool that uses the API.
// It provides an easy and reliable interface to quickly generate ascii art in
// the terminal from images (or directories of images) on the filesystem.
//
// Supported formats are .png, .jpg, .jpeg, .gif, .bmp, .tif, .tiff and .webp
// (See github.com/nebbyJammin/asciiraster/pkg/imagesrc).
package main
