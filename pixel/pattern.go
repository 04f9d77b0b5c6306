package pixel

// VerticalBars paints bars of the full palette across the store, cycling
// through all 8 colors. With a 320-pixel-wide store and 40-pixel bars this
// produces exactly 8 complete bars per row, every row identical.
func VerticalBars(s *Store, barWidth int) {
	for y := 0; y < s.ResY(); y++ {
		for x := 0; x < s.ResX(); x++ {
			s.WritePixel(x, y, Palette[(x/barWidth)%len(Palette)])
		}
	}
}

// DiagonalWash paints the classic bring-up pattern: a color index that
// advances every 40 columns and every 60 rows, with a solid red band on the
// last 14 scanlines.
func DiagonalWash(s *Store) {
	index := 0
	xcounter := 0
	ycounter := 0
	redBand := s.ResY() - 14

	for y := 0; y < s.ResY(); y++ {
		if ycounter == 60 {
			ycounter = 0
			index = (index + 1) % len(Palette)
		}
		ycounter++

		for x := 0; x < s.ResX(); x++ {
			if y >= redBand {
				s.WritePixel(x, y, Red)
				continue
			}

			if xcounter == 40 {
				xcounter = 0
				index = (index + 1) % len(Palette)
			}
			xcounter++

			s.WritePixel(x, y, Palette[index])
		}
	}
}
