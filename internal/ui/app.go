package ui

import (
	"fmt"
	"image"
	"image/color"
	"strconv"
	"strings"

	"gioui.org/app"
	"gioui.org/f32"
	"gioui.org/gesture"
	"gioui.org/io/event"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"github.com/hashicorp/go-hclog"
	"github.com/oligo/gioview/menu"
	"github.com/oligo/gioview/theme"
	"golang.org/x/exp/shiny/materialdesign/icons"

	"github.com/OpenTraceLab/segbar/pkg/render"
	"github.com/OpenTraceLab/segbar/pkg/segment"
)

// pointerGrab is how close, in dp, a press must land to a pointer to start
// dragging it.
const pointerGrab = 8

type unitOption struct {
	Unit  segment.UnitType
	Label string
}

var unitOptions = []unitOption{
	{Unit: segment.UnitPercent, Label: "Percent"},
	{Unit: segment.UnitCurrency, Label: "Currency"},
}

// App drives the Gio segmentation editor.
type App struct {
	Window *app.Window
	Theme  *theme.Theme
	State  *AppState

	log   hclog.Logger
	style render.Style
	ops   op.Ops

	removeBtn widget.Clickable
	addBtn    widget.Clickable
	prevBtn   widget.Clickable
	nextBtn   widget.Clickable
	clearBtn  widget.Clickable

	removeIcon *widget.Icon
	addIcon    *widget.Icon
	prevIcon   *widget.Icon
	nextIcon   *widget.Icon
	clearIcon  *widget.Icon

	unitMenuBtn widget.Clickable
	unitMenu    *menu.DropdownMenu
	totalEditor widget.Editor

	segmentList   layout.List
	segmentClicks []widget.Clickable
	swatchClicks  []widget.Clickable
	logList       layout.List

	// Event tags for the pie and bar hit areas.
	pieTag int
	barTag int

	pie  render.Pie
	bar  render.Bar
	drag DragTracker

	logPaneHeight float32
	logSplitter   gesture.Drag
	logSplitLastY float32
	logSplitDrag  bool
}

// New wires the Gio window, theme, and shared state together.
func New(window *app.Window, state *AppState, logger hclog.Logger) *App {
	if state == nil {
		state = NewState(nil, nil, logger)
	}
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	a := &App{
		Window:      window,
		Theme:       theme.NewTheme("", nil, true),
		State:       state,
		log:         logger,
		style:       render.DefaultStyle(),
		segmentList: layout.List{Axis: layout.Vertical},
		logList:     layout.List{Axis: layout.Vertical, ScrollToEnd: true},
		totalEditor: widget.Editor{SingleLine: true, Submit: true},
	}
	a.applyPalette()
	a.initIcons()
	a.unitMenu = a.buildUnitMenu()

	snap := state.Snapshot()
	a.totalEditor.SetText(formatTotal(snap.Partition.TotalValue))
	return a
}

// Run processes Gio events until the window is closed.
func (a *App) Run() error {
	for {
		e := a.Window.Event()
		switch ev := e.(type) {
		case app.DestroyEvent:
			return ev.Err
		case app.FrameEvent:
			gtx := app.NewContext(&a.ops, ev)
			a.layout(gtx)
			ev.Frame(gtx.Ops)
		}
	}
}

func (a *App) initIcons() {
	makeIcon := func(data []byte, name string) *widget.Icon {
		icon, err := widget.NewIcon(data)
		if err != nil {
			a.log.Warn("failed to load icon", "icon", name, "error", err)
			return nil
		}
		return icon
	}
	a.removeIcon = makeIcon(icons.ContentRemove, "remove")
	a.addIcon = makeIcon(icons.ContentAdd, "add")
	a.prevIcon = makeIcon(icons.NavigationChevronLeft, "prev")
	a.nextIcon = makeIcon(icons.NavigationChevronRight, "next")
	a.clearIcon = makeIcon(icons.ContentClear, "clear")
}

func (a *App) applyPalette() {
	a.Theme.WithPalette(theme.Palette{
		Bg:         color.NRGBA{R: 245, G: 247, B: 253, A: 255},
		Fg:         color.NRGBA{R: 34, G: 37, B: 49, A: 255},
		ContrastBg: color.NRGBA{R: 80, G: 120, B: 255, A: 255},
		ContrastFg: color.NRGBA{R: 255, G: 255, B: 255, A: 255},
		Bg2:        color.NRGBA{R: 225, G: 230, B: 244, A: 255},
	})
}

func (a *App) buildUnitMenu() *menu.DropdownMenu {
	opts := make([]menu.MenuOption, 0, len(unitOptions))
	for _, opt := range unitOptions {
		option := opt
		opts = append(opts, menu.MenuOption{
			OnClicked: func() error {
				a.State.SetUnit(option.Unit)
				a.invalidate()
				return nil
			},
			Layout: func(gtx menu.C, th *theme.Theme) menu.D {
				lbl := material.Body1(th.Theme, option.Label)
				if option.Unit == a.State.UnitType() {
					lbl.Color = th.Palette.ContrastBg
				}
				return layout.Inset{Left: unit.Dp(4), Right: unit.Dp(4)}.Layout(gtx, lbl.Layout)
			},
		})
	}
	drop := menu.NewDropdownMenu([][]menu.MenuOption{opts})
	drop.MaxWidth = unit.Dp(220)
	return drop
}

func (a *App) layout(gtx layout.Context) layout.Dimensions {
	state := a.State.Snapshot()
	a.ensureClickables(len(state.Partition.Segments))

	paint.FillShape(gtx.Ops, a.Theme.Palette.Bg, clip.Rect{Max: gtx.Constraints.Max}.Op())

	return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return a.layoutTopBar(gtx, state)
		}),
		layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
			return layout.Flex{Axis: layout.Horizontal}.Layout(gtx,
				layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
					return layout.Inset{Left: unit.Dp(12), Right: unit.Dp(12), Bottom: unit.Dp(8)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
						return a.layoutCard(gtx, func(gtx layout.Context) layout.Dimensions {
							return a.layoutCharts(gtx, state)
						})
					})
				}),
				layout.Rigid(func(gtx layout.Context) layout.Dimensions {
					width := gtx.Dp(unit.Dp(280))
					gtx.Constraints.Max.X = width
					gtx.Constraints.Min.X = width
					return layout.Inset{Right: unit.Dp(12), Bottom: unit.Dp(8)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
						return a.layoutCard(gtx, func(gtx layout.Context) layout.Dimensions {
							return a.layoutSegmentPanel(gtx, state)
						})
					})
				}),
			)
		}),
		layout.Rigid(a.layoutLogSplitter),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return a.layoutLogPane(gtx, state)
		}),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return a.layoutStatus(gtx, state)
		}),
	)
}

func (a *App) layoutTopBar(gtx layout.Context, state StateSnapshot) layout.Dimensions {
	for a.removeBtn.Clicked(gtx) {
		a.State.AdjustCount(-1)
		a.invalidate()
	}
	for a.addBtn.Clicked(gtx) {
		a.State.AdjustCount(1)
		a.invalidate()
	}
	for a.prevBtn.Clicked(gtx) {
		a.State.SelectPrev()
		a.invalidate()
	}
	for a.nextBtn.Clicked(gtx) {
		a.State.SelectNext()
		a.invalidate()
	}
	for a.clearBtn.Clicked(gtx) {
		a.State.ClearSelection()
		a.invalidate()
	}
	if a.unitMenuBtn.Clicked(gtx) {
		a.unitMenu.ToggleVisibility(gtx)
	}
	a.handleTotalEditor(gtx)

	th := a.Theme.Theme
	count := len(state.Partition.Segments)
	return layout.Inset{
		Top: unit.Dp(12), Bottom: unit.Dp(8), Left: unit.Dp(16), Right: unit.Dp(16),
	}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx,
			layout.Rigid(material.H6(th, "Segments").Layout),
			layout.Rigid(layout.Spacer{Width: unit.Dp(16)}.Layout),
			layout.Rigid(a.iconButton(&a.removeBtn, a.removeIcon, "Remove segment")),
			layout.Rigid(layout.Spacer{Width: unit.Dp(6)}.Layout),
			layout.Rigid(material.Body1(th, strconv.Itoa(count)).Layout),
			layout.Rigid(layout.Spacer{Width: unit.Dp(6)}.Layout),
			layout.Rigid(a.iconButton(&a.addBtn, a.addIcon, "Add segment")),
			layout.Rigid(layout.Spacer{Width: unit.Dp(18)}.Layout),
			layout.Rigid(a.iconButton(&a.prevBtn, a.prevIcon, "Previous segment")),
			layout.Rigid(layout.Spacer{Width: unit.Dp(6)}.Layout),
			layout.Rigid(a.iconButton(&a.nextBtn, a.nextIcon, "Next segment")),
			layout.Rigid(layout.Spacer{Width: unit.Dp(6)}.Layout),
			layout.Rigid(a.iconButton(&a.clearBtn, a.clearIcon, "Clear selection")),
			layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
				return layout.Dimensions{}
			}),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				label := "Unit: " + unitLabel(state.Partition.UnitType)
				dims := material.Button(th, &a.unitMenuBtn, label).Layout(gtx)
				a.unitMenu.Layout(gtx, a.Theme)
				return dims
			}),
			layout.Rigid(layout.Spacer{Width: unit.Dp(12)}.Layout),
			layout.Rigid(material.Body2(th, "Total "+state.CurrencySymbol).Layout),
			layout.Rigid(layout.Spacer{Width: unit.Dp(6)}.Layout),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				width := gtx.Dp(unit.Dp(100))
				gtx.Constraints.Min.X = width
				gtx.Constraints.Max.X = width
				ed := material.Editor(th, &a.totalEditor, "1000")
				return widget.Border{
					Color:        a.Theme.Palette.Fg,
					CornerRadius: unit.Dp(4),
					Width:        unit.Dp(1),
				}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
					return layout.UniformInset(unit.Dp(6)).Layout(gtx, ed.Layout)
				})
			}),
		)
	})
}

func (a *App) iconButton(clk *widget.Clickable, icon *widget.Icon, description string) layout.Widget {
	return func(gtx layout.Context) layout.Dimensions {
		if icon == nil {
			return material.Button(a.Theme.Theme, clk, description).Layout(gtx)
		}
		btn := material.IconButton(a.Theme.Theme, clk, icon, description)
		btn.Inset = layout.UniformInset(unit.Dp(6))
		btn.Size = unit.Dp(20)
		return btn.Layout(gtx)
	}
}

func (a *App) handleTotalEditor(gtx layout.Context) {
	for {
		ev, ok := a.totalEditor.Update(gtx)
		if !ok {
			break
		}
		if _, ok := ev.(widget.SubmitEvent); !ok {
			continue
		}
		raw := strings.TrimSpace(a.totalEditor.Text())
		total, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			total = 0
		}
		if err := a.State.SetTotal(total); err != nil {
			a.log.Warn("invalid total", "input", raw, "error", err)
			a.State.SetStatus("Invalid total, using fallback")
		} else {
			a.State.SetStatus("Total set to " + formatTotal(total))
		}
		a.totalEditor.SetText(formatTotal(a.State.Snapshot().Partition.TotalValue))
		a.invalidate()
	}
}

func (a *App) layoutCard(gtx layout.Context, body layout.Widget) layout.Dimensions {
	return layout.Stack{}.Layout(gtx,
		layout.Expanded(func(gtx layout.Context) layout.Dimensions {
			rr := gtx.Dp(unit.Dp(12))
			paint.FillShape(gtx.Ops, color.NRGBA{R: 248, G: 248, B: 253, A: 255}, clip.RRect{
				Rect: image.Rectangle{Max: gtx.Constraints.Max},
				NW:   rr, NE: rr, SW: rr, SE: rr,
			}.Op(gtx.Ops))
			return layout.Dimensions{Size: gtx.Constraints.Max}
		}),
		layout.Stacked(func(gtx layout.Context) layout.Dimensions {
			return layout.UniformInset(unit.Dp(16)).Layout(gtx, body)
		}),
	)
}

func (a *App) layoutCharts(gtx layout.Context, state StateSnapshot) layout.Dimensions {
	return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
			return a.layoutPie(gtx, state)
		}),
		layout.Rigid(layout.Spacer{Height: unit.Dp(8)}.Layout),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return a.layoutSizeDisplay(gtx, state)
		}),
		layout.Rigid(layout.Spacer{Height: unit.Dp(12)}.Layout),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return a.layoutBar(gtx, state)
		}),
	)
}

func (a *App) layoutPie(gtx layout.Context, state StateSnapshot) layout.Dimensions {
	size := gtx.Constraints.Max
	a.pie = render.PieIn(size.X, size.Y, float32(gtx.Dp(unit.Dp(12))))

	for {
		ev, ok := gtx.Event(pointer.Filter{Target: &a.pieTag, Kinds: pointer.Press})
		if !ok {
			break
		}
		pe, ok := ev.(pointer.Event)
		if !ok || pe.Buttons != pointer.ButtonPrimary {
			continue
		}
		angle, inside := a.pie.AngleAt(pe.Position)
		if !inside {
			continue
		}
		if idx, ok := a.State.ClickAngle(angle); ok {
			a.State.SetStatus(fmt.Sprintf("Segment %d selected", idx+1))
		}
		a.invalidate()
	}

	area := clip.Rect{Max: size}.Push(gtx.Ops)
	event.Op(gtx.Ops, &a.pieTag)
	area.Pop()

	render.DrawPie(gtx.Ops, a.pie, state.Partition, a.style)
	return layout.Dimensions{Size: size}
}

func (a *App) layoutSizeDisplay(gtx layout.Context, state StateSnapshot) layout.Dimensions {
	snap := state.Partition
	text := "Click a segment to see its size"
	if snap.HasSelection() {
		text = fmt.Sprintf("Segment %d: %s", snap.Selected+1, snap.Display[snap.Selected])
	}
	lbl := material.H6(a.Theme.Theme, text)
	return layout.Center.Layout(gtx, lbl.Layout)
}

func (a *App) layoutBar(gtx layout.Context, state StateSnapshot) layout.Dimensions {
	barHeight := float32(gtx.Dp(unit.Dp(40)))
	handle := a.style.PointerHeight + 4
	size := image.Pt(gtx.Constraints.Max.X, int(barHeight+handle))
	margin := a.style.PointerWidth
	a.bar = render.Bar{
		Min:  f32.Pt(margin, handle),
		Size: f32.Pt(float32(size.X)-2*margin, barHeight),
	}

	for {
		ev, ok := gtx.Event(pointer.Filter{
			Target: &a.barTag,
			Kinds:  pointer.Press | pointer.Drag | pointer.Release | pointer.Cancel,
		})
		if !ok {
			break
		}
		pe, ok := ev.(pointer.Event)
		if !ok {
			continue
		}
		a.handleBarEvent(gtx, pe, state.Partition.Boundaries)
	}

	area := clip.Rect{Max: size}.Push(gtx.Ops)
	pointer.CursorColResize.Add(gtx.Ops)
	event.Op(gtx.Ops, &a.barTag)
	area.Pop()

	active := -1
	if p, ok := a.drag.Active(); ok {
		active = p
	}
	render.DrawBar(gtx.Ops, a.bar, state.Partition, a.style)
	render.DrawPointers(gtx.Ops, a.bar, state.Partition.Boundaries, active, a.style)
	return layout.Dimensions{Size: size}
}

func (a *App) handleBarEvent(gtx layout.Context, pe pointer.Event, boundaries []float64) {
	switch pe.Kind {
	case pointer.Press:
		tolerance := float32(gtx.Dp(unit.Dp(pointerGrab)))
		if p, ok := a.bar.PointerAt(pe.Position.X, boundaries, tolerance); ok {
			a.drag.Begin(p, pe.Position.X, a.bar.Size.X)
			a.log.Debug("drag start", "pointer", p)
		} else if a.bar.Contains(pe.Position) {
			if idx, ok := a.State.ClickBar(a.bar.PercentAt(pe.Position.X)); ok {
				a.State.SetStatus(fmt.Sprintf("Segment %d selected", idx+1))
			}
		}
	case pointer.Drag:
		p, delta, ok := a.drag.Move(pe.Position.X)
		if !ok || delta == 0 {
			return
		}
		if err := a.State.Resize(p, delta); err != nil {
			a.log.Error("resize failed", "error", err)
			a.drag.End()
		}
	case pointer.Release, pointer.Cancel:
		if p, ok := a.drag.Active(); ok {
			a.log.Debug("drag end", "pointer", p)
		}
		a.drag.End()
	}
	a.invalidate()
}

func (a *App) layoutSegmentPanel(gtx layout.Context, state StateSnapshot) layout.Dimensions {
	th := a.Theme.Theme
	snap := state.Partition
	return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		layout.Rigid(material.H6(th, "Segments").Layout),
		layout.Rigid(layout.Spacer{Height: unit.Dp(8)}.Layout),
		layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
			return a.segmentList.Layout(gtx, len(snap.Segments), func(gtx layout.Context, idx int) layout.Dimensions {
				if idx >= len(snap.Segments) || idx >= len(a.segmentClicks) {
					return layout.Dimensions{}
				}
				clk := &a.segmentClicks[idx]
				for clk.Clicked(gtx) {
					a.State.Select(idx)
					a.invalidate()
				}
				return clk.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
					return a.layoutSegmentRow(gtx, snap, idx)
				})
			})
		}),
		layout.Rigid(layout.Spacer{Height: unit.Dp(12)}.Layout),
		layout.Rigid(material.Body2(th, "Color for selected segment").Layout),
		layout.Rigid(layout.Spacer{Height: unit.Dp(6)}.Layout),
		layout.Rigid(a.layoutSwatches),
	)
}

func (a *App) layoutSegmentRow(gtx layout.Context, snap segment.Snapshot, idx int) layout.Dimensions {
	seg := snap.Segments[idx]
	label := fmt.Sprintf("Segment %d", idx+1)
	if idx == snap.Selected {
		label = "▶ " + label
	}
	return layout.Inset{Top: unit.Dp(3), Bottom: unit.Dp(3)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx,
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return swatch(gtx, seg.Color.NRGBA(), gtx.Dp(unit.Dp(16)))
			}),
			layout.Rigid(layout.Spacer{Width: unit.Dp(8)}.Layout),
			layout.Flexed(1, material.Body2(a.Theme.Theme, label).Layout),
			layout.Rigid(material.Body2(a.Theme.Theme, snap.Display[idx].String()).Layout),
		)
	})
}

func (a *App) layoutSwatches(gtx layout.Context) layout.Dimensions {
	palette := segment.DefaultPalette()
	children := make([]layout.FlexChild, 0, len(palette)*2)
	for i := range palette {
		idx := i
		col := palette[idx]
		clk := &a.swatchClicks[idx]
		for clk.Clicked(gtx) {
			if a.State.ColorSelected(col) {
				a.log.Info("segment recolored", "color", string(col))
			} else {
				a.State.SetStatus("Select a segment to recolor it")
			}
			a.invalidate()
		}
		children = append(children, layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return clk.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
				return swatch(gtx, col.NRGBA(), gtx.Dp(unit.Dp(20)))
			})
		}))
		children = append(children, layout.Rigid(layout.Spacer{Width: unit.Dp(4)}.Layout))
	}
	return layout.Flex{Axis: layout.Horizontal}.Layout(gtx, children...)
}

func swatch(gtx layout.Context, col color.NRGBA, side int) layout.Dimensions {
	size := image.Pt(side, side)
	rr := side / 5
	paint.FillShape(gtx.Ops, col, clip.RRect{
		Rect: image.Rectangle{Max: size},
		NW:   rr, NE: rr, SW: rr, SE: rr,
	}.Op(gtx.Ops))
	return layout.Dimensions{Size: size}
}

func (a *App) ensureClickables(segments int) {
	if len(a.segmentClicks) < segments {
		a.segmentClicks = append(a.segmentClicks, make([]widget.Clickable, segments-len(a.segmentClicks))...)
	}
	if n := len(segment.DefaultPalette()); len(a.swatchClicks) < n {
		a.swatchClicks = make([]widget.Clickable, n)
	}
}

func (a *App) layoutLogPane(gtx layout.Context, state StateSnapshot) layout.Dimensions {
	a.ensureLogPaneHeight(gtx)
	height := int(a.logPaneHeight)
	if h := gtx.Constraints.Max.Y; h > 0 && height > h {
		height = h
	}
	gtx.Constraints.Min.Y = height
	gtx.Constraints.Max.Y = height
	return layout.Inset{
		Left: unit.Dp(16), Right: unit.Dp(16), Top: unit.Dp(6), Bottom: unit.Dp(6),
	}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		if len(state.Logs) == 0 {
			return material.Caption(a.Theme.Theme, "Logs will appear here.").Layout(gtx)
		}
		return a.logList.Layout(gtx, len(state.Logs), func(gtx layout.Context, idx int) layout.Dimensions {
			if idx >= len(state.Logs) {
				return layout.Dimensions{}
			}
			lbl := material.Caption(a.Theme.Theme, state.Logs[idx])
			lbl.Color = color.NRGBA{R: 40, G: 40, B: 40, A: 255}
			return lbl.Layout(gtx)
		})
	})
}

func (a *App) layoutLogSplitter(gtx layout.Context) layout.Dimensions {
	height := gtx.Dp(unit.Dp(8))
	if height < 4 {
		height = 4
	}
	size := image.Pt(gtx.Constraints.Max.X, height)
	rect := clip.Rect{Max: size}
	paint.FillShape(gtx.Ops, a.Theme.Bg2, rect.Op())

	stack := rect.Push(gtx.Ops)
	pointer.CursorRowResize.Add(gtx.Ops)
	a.logSplitter.Add(gtx.Ops)
	stack.Pop()

	for {
		ev, ok := a.logSplitter.Update(gtx.Metric, gtx.Source, gesture.Vertical)
		if !ok {
			break
		}
		switch ev.Kind {
		case pointer.Press:
			a.logSplitDrag = true
			a.logSplitLastY = ev.Position.Y
		case pointer.Drag:
			if a.logSplitDrag {
				dy := ev.Position.Y - a.logSplitLastY
				a.logSplitLastY = ev.Position.Y
				a.logPaneHeight -= dy
				a.clampLogPaneHeight(gtx)
				a.invalidate()
			}
		case pointer.Release, pointer.Cancel:
			a.logSplitDrag = false
		}
	}
	return layout.Dimensions{Size: size}
}

func (a *App) ensureLogPaneHeight(gtx layout.Context) {
	if a.logPaneHeight > 0 {
		return
	}
	a.logPaneHeight = float32(gtx.Dp(unit.Dp(120)))
	a.clampLogPaneHeight(gtx)
}

func (a *App) clampLogPaneHeight(gtx layout.Context) {
	min := float32(gtx.Dp(unit.Dp(60)))
	max := float32(gtx.Dp(unit.Dp(320)))
	if a.logPaneHeight < min {
		a.logPaneHeight = min
	}
	if a.logPaneHeight > max {
		a.logPaneHeight = max
	}
}

func (a *App) layoutStatus(gtx layout.Context, state StateSnapshot) layout.Dimensions {
	snap := state.Partition
	unitInfo := "Unit: " + unitLabel(snap.UnitType)
	if snap.UnitType == segment.UnitCurrency {
		unitInfo = fmt.Sprintf("%s (total %s %s)", unitInfo, formatTotal(snap.TotalValue), state.CurrencySymbol)
	}
	th := a.Theme.Theme
	return layout.Stack{}.Layout(gtx,
		layout.Expanded(func(gtx layout.Context) layout.Dimensions {
			paint.FillShape(gtx.Ops, a.Theme.Bg2, clip.Rect{Max: gtx.Constraints.Max}.Op())
			return layout.Dimensions{Size: gtx.Constraints.Max}
		}),
		layout.Stacked(func(gtx layout.Context) layout.Dimensions {
			inset := layout.Inset{Left: unit.Dp(16), Right: unit.Dp(16), Top: unit.Dp(6), Bottom: unit.Dp(6)}
			return inset.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
				return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx,
					layout.Rigid(material.Body2(th, fmt.Sprintf("Segments: %d", len(snap.Segments))).Layout),
					layout.Rigid(layout.Spacer{Width: unit.Dp(18)}.Layout),
					layout.Rigid(material.Body2(th, unitInfo).Layout),
					layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
						return layout.Dimensions{}
					}),
					layout.Rigid(material.Body2(th, "Status: "+state.Status).Layout),
				)
			})
		}),
	)
}

// invalidate requests a new frame.
func (a *App) invalidate() {
	if a.Window != nil {
		a.Window.Invalidate()
	}
}

func unitLabel(u segment.UnitType) string {
	for _, opt := range unitOptions {
		if opt.Unit == u {
			return opt.Label
		}
	}
	return string(u)
}

func formatTotal(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
