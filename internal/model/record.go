package model

// RawRecord is a schema-agnostic row exactly as the datastore API returned it
type RawRecord map[string]interface{}

// Column names used by the public investment dataset
const (
	FieldYear     = "ANO"
	FieldRegion   = "REGION"
	FieldProvince = "PROVINCIA"
	FieldService  = "SERVICIO"
	FieldAmount   = "INVERSION (MILES DE $ DE CADA ANO)"
)

// InvestmentRecord is a typed row after numeric coercion. Rows whose year or
// amount cannot be coerced never materialize as an InvestmentRecord.
type InvestmentRecord struct {
	Year     int     `json:"year"`
	Region   string  `json:"region"`
	Province string  `json:"province"`
	Service  string  `json:"service"`
	Amount   float64 `json:"amount"`
}

// Dimension is a categorical column the dashboard can break down by
type Dimension string

const (
	DimensionRegion   Dimension = "region"
	DimensionProvince Dimension = "province"
	DimensionService  Dimension = "service"
)

// Valid reports whether d names a known breakdown dimension.
func (d Dimension) Valid() bool {
	switch d {
	case DimensionRegion, DimensionProvince, DimensionService:
		return true
	}
	return false
}

// Value returns the record's value for the dimension.
func (r InvestmentRecord) Value(d Dimension) string {
	switch d {
	case DimensionRegion:
		return r.Region
	case DimensionProvince:
		return r.Province
	case DimensionService:
		return r.Service
	}
	return ""
}
