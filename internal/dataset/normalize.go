package dataset

import (
	"investment-dashboard/internal/model"
	"investment-dashboard/pkg/utils"
)

// Normalize coerces raw rows into typed investment records. A row whose year
// or amount cannot be coerced to a number is dropped and counted; categorical
// columns pass through as trimmed strings. Input order is preserved.
func Normalize(raw []model.RawRecord) (records []model.InvestmentRecord, dropped int) {
	records = make([]model.InvestmentRecord, 0, len(raw))
	for _, rec := range raw {
		year, yearOK := utils.CoerceInt(rec[model.FieldYear])
		amount, amountOK := utils.CoerceFloat(rec[model.FieldAmount])
		if !yearOK || !amountOK {
			dropped++
			continue
		}
		records = append(records, model.InvestmentRecord{
			Year:     year,
			Region:   utils.CoerceString(rec[model.FieldRegion]),
			Province: utils.CoerceString(rec[model.FieldProvince]),
			Service:  utils.CoerceString(rec[model.FieldService]),
			Amount:   amount,
		})
	}
	return records, dropped
}
