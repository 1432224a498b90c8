// Package ascii arranges trees of boxes on a character-cell grid and paints
// the result.
//
// Users import this single package for the complete public API: plans and
// nodes, the arrangement engine, text measurement, batch arrangement of
// independent trees, and the Canvas that turns arranged geometry into text.
//
//	root := ascii.NewNamedNode("root", ascii.DefaultPlan())
//	root.AddChild(ascii.NewNamedNode("label", ascii.DefaultPlan()))
//	ascii.Arrange(root, 80, 24)
//
//	c := ascii.NewCanvas(80, 24)
//	c.Paint(root, ascii.Outline(ascii.BorderRounded))
//	fmt.Println(c.StringTrimmed())
package ascii
