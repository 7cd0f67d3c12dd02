package effectunit

import (
	"errors"
	"fmt"
	"maps"
	"math"
	"slices"
	"strconv"
	"strings"
)

// Params holds the string-keyed settings of one effect.
type Params struct {
	Num map[string]float64
	Str map[string]string
}

var errBadAssignment = errors.New("effectunit: assignment must be key=value")

// GetNum safely extracts a numeric parameter, returning def if missing or invalid.
func (p Params) GetNum(key string, def float64) float64 {
	if p.Num == nil {
		return def
	}

	v, ok := p.Num[key]
	if !ok || math.IsNaN(v) || math.IsInf(v, 0) {
		return def
	}

	return v
}

// GetInt extracts a numeric parameter rounded to the nearest integer.
func (p Params) GetInt(key string, def int) int {
	v := p.GetNum(key, math.NaN())
	if math.IsNaN(v) || v > math.MaxInt32 || v < math.MinInt32 {
		return def
	}

	return int(math.Round(v))
}

// GetStr extracts a string parameter, returning def if missing or empty.
func (p Params) GetStr(key, def string) string {
	if p.Str == nil {
		return def
	}

	v, ok := p.Str[key]
	if !ok || v == "" {
		return def
	}

	return v
}

// GetText returns a string parameter, falling back to the textual form of a
// numeric one, so menu numbers can select named options.
func (p Params) GetText(key, def string) string {
	if v := p.GetStr(key, ""); v != "" {
		return v
	}

	if v, ok := p.Num[key]; ok {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}

	return def
}

// SetNum stores a numeric parameter.
func (p *Params) SetNum(key string, v float64) {
	if p.Num == nil {
		p.Num = make(map[string]float64)
	}

	p.Num[key] = v
}

// SetStr stores a string parameter.
func (p *Params) SetStr(key, v string) {
	if p.Str == nil {
		p.Str = make(map[string]string)
	}

	p.Str[key] = v
}

// ParseAssignment stores "key=value". Values that parse as numbers are
// numeric; everything else is a string.
func (p *Params) ParseAssignment(s string) error {
	key, value, ok := strings.Cut(s, "=")
	key = strings.ToLower(strings.TrimSpace(key))
	value = strings.TrimSpace(value)

	if !ok || key == "" {
		return fmt.Errorf("%w: %q", errBadAssignment, s)
	}

	if v, err := strconv.ParseFloat(value, 64); err == nil {
		p.SetNum(key, v)
		return nil
	}

	p.SetStr(key, value)

	return nil
}

// Keys returns every parameter name in sorted order.
func (p Params) Keys() []string {
	keys := slices.Collect(maps.Keys(p.Num))
	keys = append(keys, slices.Collect(maps.Keys(p.Str))...)
	slices.Sort(keys)

	return slices.Compact(keys)
}

// Format returns the value of key as text, or "" if unset.
func (p Params) Format(key string) string {
	if v, ok := p.Num[key]; ok {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}

	return p.Str[key]
}

// Clone returns a deep copy.
func (p Params) Clone() Params {
	return Params{Num: maps.Clone(p.Num), Str: maps.Clone(p.Str)}
}
