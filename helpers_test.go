package ascii

// box returns a default plan with a fixed size. Either side may be
// negative to leave it auto.
func box(width, height float64) Plan {
	p := DefaultPlan()
	if width >= 0 {
		p.Width = Fixed(width)
	}
	if height >= 0 {
		p.Height = Fixed(height)
	}
	return p
}

// with applies edits to a plan.
func with(p Plan, edits ...func(*Plan)) Plan {
	for _, edit := range edits {
		edit(&p)
	}
	return p
}

func padded(n float64) func(*Plan) {
	return func(p *Plan) { p.Padding = EdgeAll(Fixed(n)) }
}
