package asciiart

import "image/color"

/*
SampleGrid picks one representative pixel for every cell of a dim.Rows x dim.Columns grid using nearest neighbour sampling. Cell (x, y) reads the source pixel at

	(floor(x * Width / Columns), floor(y * Height / Rows))

Only one pixel is read per cell, so the cost is linear in the output size no matter how large the source is. Area averaging would look smoother but changes the output, so don't swap it in here.

The rows of the returned matrix share a single backing slice.
*/
func SampleGrid(buf PixelBuffer, dim Dimensions) [][]color.NRGBA {
	cells := make([]color.NRGBA, dim.Rows*dim.Columns)
	grid := make([][]color.NRGBA, dim.Rows)

	// Source columns are the same for every row, so work them out once
	srcXs := make([]int, dim.Columns)
	for x := range dim.Columns {
		srcXs[x] = x * buf.Width / dim.Columns
	}

	for y := range dim.Rows {
		srcY := y * buf.Height / dim.Rows
		row := cells[y*dim.Columns : (y+1)*dim.Columns : (y+1)*dim.Columns]

		for x, srcX := range srcXs {
			row[x] = buf.At(srcX, srcY)
		}

		grid[y] = row
	}

	return grid
}
