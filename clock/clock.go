package clock

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// 時刻文字列の区切り文字と、分割後のトークン数。
const (
	delimiter  = ":"
	tokenCount = 3
)

// 各単位の上限値。時は 24:00:00 を一日の終わりとして受け付ける。
const (
	maxHour   = 24
	maxMinute = 59
	maxSecond = 59
)

// Clock は HH:MM:SS をパースした結果の時・分・秒を保持する。
type Clock struct {
	Hour   int
	Minute int
	Second int
}

// NewClock は呼び出し側から渡された time.Time から Clock を作る。
func NewClock(t time.Time) *Clock {
	return &Clock{
		Hour:   t.Hour(),
		Minute: t.Minute(),
		Second: t.Second(),
	}
}

// Parse は "HH:MM:SS" 形式の文字列を検証して Clock を返す。
// 返すエラーはすべて ErrInvalidTime をラップしている。
func Parse(s string) (*Clock, error) {
	if strings.TrimSpace(s) == "" {
		return nil, ErrEmptyInput
	}

	tokens := strings.SplitN(s, delimiter, tokenCount)
	if len(tokens) != tokenCount {
		return nil, fmt.Errorf("%w: %q has %d fields", ErrMalformedFormat, s, len(tokens))
	}

	var units [tokenCount]int
	for i, tok := range tokens {
		n, err := strconv.Atoi(tok)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a number", ErrMalformedFormat, tok)
		}
		units[i] = n
	}

	c := &Clock{Hour: units[0], Minute: units[1], Second: units[2]}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Clock) validate() error {
	switch {
	case c.Hour < 0 || c.Hour > maxHour:
		return fmt.Errorf("%w: hour %d not in 0-%d", ErrOutOfRange, c.Hour, maxHour)
	case c.Minute < 0 || c.Minute > maxMinute:
		return fmt.Errorf("%w: minute %d not in 0-%d", ErrOutOfRange, c.Minute, maxMinute)
	case c.Second < 0 || c.Second > maxSecond:
		return fmt.Errorf("%w: second %d not in 0-%d", ErrOutOfRange, c.Second, maxSecond)
	}
	return nil
}

// Convert は時刻文字列をベルリン時計の5行表現に変換する。
// 失敗した場合は空文字列とエラーを返す。
func Convert(s string) (string, error) {
	c, err := Parse(s)
	if err != nil {
		return "", err
	}
	return c.Lamps().String(), nil
}
