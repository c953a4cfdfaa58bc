package clock

import "strings"

// Lamp はランプ1つの状態を表す。点灯時は色を持つ。
type Lamp uint8

const (
	Off Lamp = iota
	Yellow
	Red
)

// Symbol は出力に使う1文字を返す。
func (l Lamp) Symbol() byte {
	switch l {
	case Yellow:
		return 'Y'
	case Red:
		return 'R'
	default:
		return 'O'
	}
}

func (l Lamp) String() string {
	switch l {
	case Yellow:
		return "yellow"
	case Red:
		return "red"
	default:
		return "off"
	}
}

// Row はランプ1行分。左から順に並ぶ。
type Row []Lamp

// Lit は点灯しているランプの数を返す。
func (r Row) Lit() int {
	n := 0
	for _, l := range r {
		if l != Off {
			n++
		}
	}
	return n
}

func (r Row) String() string {
	b := make([]byte, len(r))
	for i, l := range r {
		b[i] = l.Symbol()
	}
	return string(b)
}

// rowLayout は行ごとのランプ数・点灯色・赤で点灯する位置(1始まり)を定義する。
type rowLayout struct {
	lamps   int
	on      Lamp
	markers []int
}

var (
	secondsLayout      = rowLayout{lamps: 1, on: Yellow}
	hoursTensLayout    = rowLayout{lamps: 4, on: Red}
	hoursUnitsLayout   = rowLayout{lamps: 4, on: Red}
	minutesTensLayout  = rowLayout{lamps: 11, on: Yellow, markers: []int{3, 6, 9}} // 15分ごとの目印
	minutesUnitsLayout = rowLayout{lamps: 4, on: Yellow}
)

// fill は左から n 個を点灯させた行を作る。
func (l rowLayout) fill(n int) Row {
	row := make(Row, l.lamps)
	for i := range row {
		if i >= n {
			row[i] = Off
			continue
		}
		row[i] = l.colorAt(i + 1)
	}
	return row
}

func (l rowLayout) colorAt(pos int) Lamp {
	for _, m := range l.markers {
		if m == pos {
			return Red
		}
	}
	return l.on
}

// Display はベルリン時計の5行。出力順にフィールドを並べている。
type Display struct {
	Seconds      Row
	HoursTens    Row
	HoursUnits   Row
	MinutesTens  Row
	MinutesUnits Row
}

// Lamps は Clock からランプの点灯状態を導出する。
func (c *Clock) Lamps() Display {
	seconds := 0
	if c.Second%2 == 0 {
		seconds = 1
	}
	return Display{
		Seconds:      secondsLayout.fill(seconds),
		HoursTens:    hoursTensLayout.fill(c.Hour / 5),
		HoursUnits:   hoursUnitsLayout.fill(c.Hour % 5),
		MinutesTens:  minutesTensLayout.fill(c.Minute / 5),
		MinutesUnits: minutesUnitsLayout.fill(c.Minute % 5),
	}
}

// Rows は出力順に並べた行を返す。
func (d Display) Rows() []Row {
	return []Row{d.Seconds, d.HoursTens, d.HoursUnits, d.MinutesTens, d.MinutesUnits}
}

// String は各行を改行で区切って返す。最終行の後ろに改行は付けない。
func (d Display) String() string {
	rows := d.Rows()
	lines := make([]string, len(rows))
	for i, r := range rows {
		lines[i] = r.String()
	}
	return strings.Join(lines, "\n")
}
