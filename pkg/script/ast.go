package script

import "github.com/alecthomas/participle/v2/lexer"

// Program is a parsed replay script.
type Program struct {
	Statements []*Statement `( @@ Semicolon? | Semicolon )*`
}

// Statement is one operation. Exactly one field is set.
type Statement struct {
	Pos lexer.Position

	Count    *CountStmt    `  @@`
	Resize   *ResizeStmt   `| @@`
	Drag     *DragStmt     `| @@`
	Color    *ColorStmt    `| @@`
	Select   *SelectStmt   `| @@`
	Click    *ClickStmt    `| @@`
	ClickDeg *ClickDegStmt `| @@`
	Unit     *UnitStmt     `| @@`
	Next     bool          `| @"next"`
	Prev     bool          `| @"prev"`
	Clear    bool          `| @"clear"`
	Show     bool          `| @"show"`
	Check    bool          `| @"check"`
}

// CountStmt: count <n>
type CountStmt struct {
	N int `"count" @Number`
}

// ResizeStmt: resize <pointer> <percent delta>
type ResizeStmt struct {
	Pointer int     `"resize" @Number`
	Delta   float64 `@Number`
}

// DragStmt: drag <pointer> <pixels> <bar width>
type DragStmt struct {
	Pointer int     `"drag" @Number`
	Pixels  float64 `@Number`
	Width   float64 `@Number`
}

// ColorStmt: color <segment> <#RRGGBB>
type ColorStmt struct {
	Index int    `"color" @Number`
	Color string `@Color`
}

// SelectStmt: select <segment>
type SelectStmt struct {
	Index int `"select" @Number`
}

// ClickStmt: click <radians>
type ClickStmt struct {
	Angle float64 `"click" @Number`
}

// ClickDegStmt: clickdeg <degrees>
type ClickDegStmt struct {
	Degrees float64 `"clickdeg" @Number`
}

// UnitStmt: unit percent | unit currency [total]
type UnitStmt struct {
	Unit  string   `"unit" @Ident`
	Total *float64 `@Number?`
}

// Name returns the statement keyword, for logs and errors.
func (s *Statement) Name() string {
	switch {
	case s.Count != nil:
		return "count"
	case s.Resize != nil:
		return "resize"
	case s.Drag != nil:
		return "drag"
	case s.Color != nil:
		return "color"
	case s.Select != nil:
		return "select"
	case s.Click != nil:
		return "click"
	case s.ClickDeg != nil:
		return "clickdeg"
	case s.Unit != nil:
		return "unit"
	case s.Next:
		return "next"
	case s.Prev:
		return "prev"
	case s.Clear:
		return "clear"
	case s.Show:
		return "show"
	case s.Check:
		return "check"
	default:
		return "?"
	}
}
