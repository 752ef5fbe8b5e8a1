package core

// Index returns the row-major linear index for coordinates (x, y).
// Coordinates are assumed to be in range.
func Index(x, y, w int) int { return y*w + x }

// Coords splits a linear index back into (x, y).
func Coords(i, w int) (int, int) { return i % w, i / w }

// Left steps x one column to the left, wrapping from 0 to w-1.
func Left(x, w int) int {
	if x == 0 {
		return w - 1
	}
	return x - 1
}

// Right steps x one column to the right, wrapping from w-1 to 0.
func Right(x, w int) int {
	if x+1 >= w {
		return 0
	}
	return x + 1
}

// Up steps y one row up, wrapping from 0 to h-1.
func Up(y, h int) int {
	if y == 0 {
		return h - 1
	}
	return y - 1
}

// Down steps y one row down, wrapping from h-1 to 0.
func Down(y, h int) int {
	if y+1 >= h {
		return 0
	}
	return y + 1
}
