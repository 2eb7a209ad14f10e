package models

type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   int    `json:"error"`
	Message string `json:"message"`
}

type CategoriesResponse struct {
	Success    bool           `json:"success"`
	Categories map[int]string `json:"categories"`
}

// QuestionsResponse is returned by GET /questions. TotalQuestions is the
// size of the returned page.
type QuestionsResponse struct {
	Success        bool           `json:"success"`
	Questions      []Question     `json:"questions"`
	TotalQuestions int            `json:"total_questions"`
	Categories     map[int]string `json:"categories"`
}

type DeleteQuestionResponse struct {
	Success        bool       `json:"success"`
	Deleted        int        `json:"deleted"`
	Questions      []Question `json:"questions"`
	TotalQuestions int        `json:"total_questions"`
}

type CreateQuestionResponse struct {
	Success        bool       `json:"success"`
	Created        int        `json:"created"`
	Questions      []Question `json:"questions"`
	TotalQuestions int        `json:"total_questions"`
}

// SearchResponse reports the count of every stored question in
// TotalQuestions, not the number of matches.
type SearchResponse struct {
	Success        bool       `json:"success"`
	Questions      []Question `json:"questions"`
	TotalQuestions int        `json:"total_questions"`
}

type CategoryQuestionsResponse struct {
	Success         bool       `json:"success"`
	Questions       []Question `json:"questions"`
	TotalQuestions  int        `json:"total_questions"`
	CurrentCategory int        `json:"current_category"`
}

// QuizResponse omits Question once every candidate has been served.
type QuizResponse struct {
	Success  bool      `json:"success"`
	Question *Question `json:"question,omitempty"`
}
