package asciiart

import "fmt"

// InvalidDimensionError is returned when a source or target dimension is not positive.
type InvalidDimensionError struct {
	// Name is one of "source width", "source height" or "target width"
	Name  string
	Value int
}

func (e *InvalidDimensionError) Error() string {
	return fmt.Sprintf("asciiart: invalid %s %d: must be at least 1", e.Name, e.Value)
}

// UnknownRampError is returned when a ramp name or Ramp value is not one of the known ramps.
type UnknownRampError struct {
	Name string
}

func (e *UnknownRampError) Error() string {
	return fmt.Sprintf("asciiart: unknown ramp %q", e.Name)
}

/*
EmptyBufferError is returned when the pixel buffer length does not match Width * Height * ChannelCount.

Want is 0 when Width * Height * ChannelCount does not fit in an int, in which case no buffer can match.
*/
type EmptyBufferError struct {
	Len    int
	Want   int
	Width  int
	Height int
}

func (e *EmptyBufferError) Error() string {
	if e.Want == 0 {
		return fmt.Sprintf("asciiart: pixel buffer has %d bytes, %dx%d pixels cannot be addressed", e.Len, e.Width, e.Height)
	}

	return fmt.Sprintf("asciiart: pixel buffer has %d bytes, want %d for %dx%d pixels", e.Len, e.Want, e.Width, e.Height)
}
