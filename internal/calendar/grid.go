package calendar

// GridSize is the number of cells in a month grid: six weeks of seven days
const GridSize = 42

// DayCell is one entry of a month grid
type DayCell struct {
	Date           Date `json:"date"`
	InCurrentMonth bool `json:"in_current_month"`
}

// Grid is a Sunday-first six-week rendering of a month
type Grid [GridSize]DayCell

// Build returns the month grid for the month containing ref.
// The day of ref is ignored.
func Build(ref Date) Grid {
	first := NewDate(ref.Year, ref.Month, 1)
	lastDay := DaysIn(first.Year, first.Month)
	leading := int(first.Weekday())

	var grid Grid
	i := 0

	// Tail of the previous month
	for offset := leading; offset > 0; offset-- {
		grid[i] = DayCell{Date: first.AddDays(-offset)}
		i++
	}

	for day := 1; day <= lastDay; day++ {
		grid[i] = DayCell{
			Date:           Date{Year: first.Year, Month: first.Month, Day: day},
			InCurrentMonth: true,
		}
		i++
	}

	// Head of the next month
	next := ShiftMonth(first, 1)
	for day := 0; i < GridSize; day++ {
		grid[i] = DayCell{Date: next.AddDays(day)}
		i++
	}

	return grid
}

// Rows splits the grid into weeks
func (g Grid) Rows() [6][7]DayCell {
	var rows [6][7]DayCell
	for i, cell := range g {
		rows[i/7][i%7] = cell
	}
	return rows
}

// First returns the first date shown in the grid
func (g Grid) First() Date {
	return g[0].Date
}

// Last returns the last date shown in the grid
func (g Grid) Last() Date {
	return g[GridSize-1].Date
}

// Leading returns the number of filler cells before the 1st of the month
func (g Grid) Leading() int {
	n := 0
	for _, cell := range g {
		if cell.InCurrentMonth {
			break
		}
		n++
	}
	return n
}

// Trailing returns the number of filler cells after the last day of the month
func (g Grid) Trailing() int {
	n := 0
	for i := GridSize - 1; i >= 0 && !g[i].InCurrentMonth; i-- {
		n++
	}
	return n
}

// DaysInMonth returns the number of cells that belong to the reference month
func (g Grid) DaysInMonth() int {
	return GridSize - g.Leading() - g.Trailing()
}

// WeekdayInitials are the column headers of a Sunday-first grid
var WeekdayInitials = [7]string{"S", "M", "T", "W", "T", "F", "S"}
