package fontsize

// Options returns the sizes offered by the font size menu, in pixels.
func Options() []int {
	var sizes []int
	for px := 10; px <= 50; px += 2 {
		sizes = append(sizes, px)
	}
	return sizes
}

// IsOption is true if px is one of the menu sizes.
func IsOption(px int) bool {
	return px >= 10 && px <= 50 && px%2 == 0
}
