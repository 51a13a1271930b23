package ieee754

import (
	"github.com/cockroachdb/apd"
	json "github.com/goccy/go-json"

	"github.com/calebcase/ieee754/exact"
	"github.com/calebcase/ieee754/field"
	"github.com/calebcase/ieee754/layout"
	"github.com/calebcase/ieee754/scale"
)

// Result is a finished encoding. It is immutable and safe to share.
type Result struct {
	number  *exact.Value
	layout  layout.Layout
	scaled  *scale.Scaled // nil for special values
	fields  field.Fields
	decoded Decoded
}

// String returns the space separated sign, exponent and mantissa groups.
func (r *Result) String() string {
	return r.fields.String()
}

// BitString is the same as String.
func (r *Result) BitString() string {
	return r.fields.String()
}

// Bits returns the encoding without separators.
func (r *Result) Bits() string {
	return r.fields.Bits()
}

// Hex returns the upper case hexadecimal form of the encoding.
func (r *Result) Hex() string {
	hex, _ := r.fields.Hex()

	return hex
}

// HexParts returns the 4 bit groups that produced each hex digit.
func (r *Result) HexParts() []string {
	_, parts := r.fields.Hex()

	return parts
}

// Fields returns the sign, exponent and mantissa bit strings.
func (r *Result) Fields() field.Fields {
	return r.fields
}

// Layout returns the layout of the encoding.
func (r *Result) Layout() layout.Layout {
	return r.layout
}

// Class returns the class of the input.
func (r *Result) Class() exact.Class {
	return r.number.Class()
}

// EdgeCase is true when a fixed special pattern was used.
func (r *Result) EdgeCase() bool {
	return r.scaled == nil
}

// UnableToScale is true when the value had no exact integer scaling within
// the limits and the mantissa was truncated.
func (r *Result) UnableToScale() bool {
	return r.scaled != nil && r.scaled.Unable
}

// Decoded returns the value the encoding stands for and its distance from
// the input.
func (r *Result) Decoded() Decoded {
	return r.decoded.clone()
}

// Report is a flat view of every quantity of an encoding.
type Report struct {
	Number             string   `json:"number"`
	EdgeCase           bool     `json:"edge_case"`
	SignBitWidth       int      `json:"sign_bit_width"`
	ExponentBits       int      `json:"exponent_bits"`
	MantissaBits       int      `json:"mantissa_bits"`
	TotalBits          int      `json:"total_bits"`
	Sign               string   `json:"sign"`
	Scale              int      `json:"scale"`
	ScaledNumber       string   `json:"scaled_number"`
	ScaledNumberBinary string   `json:"scaled_number_binary"`
	BinaryOutput       string   `json:"binary_output"`
	UnableToScale      bool     `json:"unable_to_scale"`
	Bias               int      `json:"bias"`
	Exponent           string   `json:"exponent"`
	Mantissa           string   `json:"mantissa"`
	Result             string   `json:"result"`
	Hexadecimal        string   `json:"hexadecimal"`
	HexadecimalParts   []string `json:"hexadecimal_parts"`
	ConvertedNumber    string   `json:"converted_number"`
	Error              string   `json:"error"`
}

// Report returns the report view of the result.
func (r *Result) Report() Report {
	hex, parts := r.fields.Hex()

	rep := Report{
		Number:           r.number.String(),
		EdgeCase:         r.EdgeCase(),
		SignBitWidth:     layout.SignBits,
		ExponentBits:     r.layout.ExponentBits,
		MantissaBits:     r.layout.MantissaBits,
		TotalBits:        r.layout.Width(),
		Sign:             r.fields.Sign,
		Bias:             r.layout.Bias,
		Exponent:         r.fields.Exponent,
		Mantissa:         r.fields.Mantissa,
		Result:           r.fields.String(),
		Hexadecimal:      hex,
		HexadecimalParts: parts,
		ConvertedNumber:  r.decoded.Value.String(),
		Error:            r.decoded.Error.String(),
	}

	if r.scaled != nil {
		rep.Scale = r.scaled.Scale
		rep.ScaledNumber = r.scaled.Integer.String()
		rep.ScaledNumberBinary = r.scaled.Binary
		rep.BinaryOutput = r.scaled.Point()
		rep.UnableToScale = r.scaled.Unable
	}

	return rep
}

// JSON returns the indented JSON form of the report.
func (rep Report) JSON() ([]byte, error) {
	data, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return nil, Error.Wrap(err)
	}

	return data, nil
}

// Decoded is the value of an encoding.
type Decoded struct {
	Value *apd.Decimal

	// Error is |original - Value|. It is zero for special values and nil
	// when no original is known.
	Error *apd.Decimal

	Class exact.Class
}

func (d Decoded) clone() Decoded {
	c := Decoded{
		Class: d.Class,
	}

	if d.Value != nil {
		c.Value = new(apd.Decimal).Set(d.Value)
	}

	if d.Error != nil {
		c.Error = new(apd.Decimal).Set(d.Error)
	}

	return c
}
