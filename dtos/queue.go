package dtos

type IssueTicketInput struct {
	CustomerName *string `json:"customerName,omitempty"`
}

type SetQueueInput struct {
	ServingNumber int `json:"servingNumber" binding:"min=0"`
}
