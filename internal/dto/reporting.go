package dto

// MonthlyTrendParams defines query parameters for the monthly trend report.
type MonthlyTrendParams struct {
	Months int `form:"months,default=12" binding:"omitempty,min=1,max=120"`
}

// TrendParams defines query parameters for the income/expense trend report.
type TrendParams struct {
	Period string `form:"period,default=month" binding:"omitempty,oneof=week month year"`
}

// CategoryScopeParams defines query parameters for scoped category lookups.
type CategoryScopeParams struct {
	Category1 string `form:"category1"`
	Category2 string `form:"category2"`
}
