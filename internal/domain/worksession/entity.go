package worksession

import (
	"time"

	"github.com/shopspring/decimal"
)

// WorkSession is one worker's recorded work on one date for one project,
// clock/break data already reduced to hour totals at attendance entry.
// Worker and project names are denormalized onto the row so aggregation does
// not depend on master-data lookups.
type WorkSession struct {
	ID            string
	CompanyID     string
	WorkerID      string
	WorkerName    string
	ProjectID     string
	ProjectName   string
	WorkDate      time.Time
	TotalHours    float64
	OvertimeHours float64
	DailyWage     decimal.Decimal
	OvertimeRate  decimal.Decimal
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
