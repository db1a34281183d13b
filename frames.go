package spin

type frames struct {
	glyphs []string
	index  int
}

func newFrames() *frames {
	return &frames{
		glyphs: []string{"-", "\\", "|", "/"},
	}
}

func (f *frames) Next() string {
	g := f.glyphs[f.index]
	f.index = (f.index + 1) % len(f.glyphs)
	return g
}
