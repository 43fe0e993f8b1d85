package dto

import "replyflow.app/api/internal/model"

type DashboardResponse struct {
	Stats          model.DashboardStats `json:"stats"`
	ActiveKeywords []KeywordResponse    `json:"active_keywords"`
	TotalKeywords  int                  `json:"total_keywords"`
}
