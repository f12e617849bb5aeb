package testcases

var circleCases = []TestCase{
	{
		Name:   "outline",
		Width:  64,
		Height: 64,
		Ops: []Operation{
			Circle{Center: pt(32, 32), Radius: 28, Color: white},
			Circle{Center: pt(32, 32), Radius: 14, Color: cyan},
			Circle{Center: pt(32, 32), Radius: 3, Color: yellow},
		},
	},
	{
		Name:   "filled",
		Width:  64,
		Height: 64,
		Ops: []Operation{
			Circle{Center: pt(24, 24), Radius: 18, Color: red, Filled: true},
			Circle{Center: pt(44, 40), Radius: 12, Color: blue, Filled: true},
		},
	},
	{
		Name:   "translucent",
		Width:  64,
		Height: 64,
		Blend:  true,
		Ops: []Operation{
			Circle{Center: pt(24, 26), Radius: 16, Color: withAlpha(red, 0.5), Filled: true},
			Circle{Center: pt(40, 26), Radius: 16, Color: withAlpha(green, 0.5), Filled: true},
			Circle{Center: pt(32, 40), Radius: 16, Color: withAlpha(blue, 0.5), Filled: true},
		},
	},
}
