package forecast

import (
	"github.com/cloud-ru/smb-finance-go/internal/advice"
	"github.com/cloud-ru/smb-finance-go/internal/models"
	"github.com/cloud-ru/smb-finance-go/internal/projection"
)

// Report - полный ответ прогноза: текущие показатели, прогноз по месяцам и рекомендации
type Report struct {
	CurrentSummary  projection.Summary          `json:"current_summary"`
	ProjectedMonths []projection.ProjectedMonth `json:"projected_months"`
	Recommendations []advice.Advisory           `json:"recommendations"`
	Assumptions     projection.Assumptions      `json:"assumptions"`
	Horizon         int                         `json:"horizon"`
}

// Build считает прогноз и рекомендации за один явный вызов, без кэширования
func Build(txs []models.Transaction, a projection.Assumptions, horizon int) (*Report, error) {
	p, err := projection.Project(txs, a, horizon)
	if err != nil {
		return nil, err
	}

	return &Report{
		CurrentSummary:  p.Summary,
		ProjectedMonths: p.Months,
		Recommendations: advice.Evaluate(p.Summary, p.Months, a),
		Assumptions:     a,
		Horizon:         horizon,
	}, nil
}
