package services

import (
	"context"
	"time"

	"github.com/SAP-F-2025/kumi-math-service/internal/learningpath"
	"github.com/SAP-F-2025/kumi-math-service/internal/mastery"
	"github.com/SAP-F-2025/kumi-math-service/internal/models"
	"github.com/SAP-F-2025/kumi-math-service/internal/quiz"
	"github.com/SAP-F-2025/kumi-math-service/internal/resources"
)

// ===== SERVICE INTERFACES =====

type ChildService interface {
	Create(ctx context.Context, req *CreateChildRequest) (*models.Child, error)
	GetByID(ctx context.Context, id uint) (*models.Child, error)
	List(ctx context.Context, req *ListChildrenRequest) (*ChildListResponse, error)
}

type AssessmentService interface {
	Start(ctx context.Context, req *StartSessionRequest) (*SessionResponse, error)
	Get(ctx context.Context, sessionID string) (*SessionResponse, error)
	Answer(ctx context.Context, sessionID string, req *AnswerRequest) (*SessionResponse, error)
	Next(ctx context.Context, sessionID string) (*SessionResponse, error)
	Prev(ctx context.Context, sessionID string) (*SessionResponse, error)
	Pause(ctx context.Context, sessionID string) (*SessionResponse, error)
	Resume(ctx context.Context, sessionID string) (*SessionResponse, error)
	Finish(ctx context.Context, sessionID string) (*SessionResponse, error)
}

type ResultService interface {
	Submit(ctx context.Context, req *SubmitResultRequest) (*ResultResponse, error)
	GetByID(ctx context.Context, id uint) (*ResultResponse, error)
	Latest(ctx context.Context, childID uint) (*ResultResponse, error)
	ListByChild(ctx context.Context, childID uint, req *ListResultsRequest) (*ResultListResponse, error)
	Evaluate(ctx context.Context, req *EvaluateRequest) (*EvaluationResponse, error)
}

type LearningPathService interface {
	Plan(ctx context.Context, childID uint) (*LearningPathResponse, error)
	CompleteActivity(ctx context.Context, childID uint, activityID string) (*LearningPathResponse, error)
}

type DashboardService interface {
	Overview(ctx context.Context, childID uint) (*DashboardResponse, error)
}

type ResourceService interface {
	List(ctx context.Context, filter resources.Filter) ([]resources.Resource, error)
	Types(ctx context.Context) []string
	Concepts(ctx context.Context) []mastery.ConceptInfo
}

type ExportService interface {
	ExportResult(ctx context.Context, resultID uint) ([]byte, string, error)
}

// ===== REQUESTS =====

type CreateChildRequest struct {
	Name      string `json:"name" validate:"required,min=1,max=100"`
	Age       int    `json:"age" validate:"required,min=5,max=8"`
	Grade     string `json:"grade" validate:"omitempty,max=10"`
	AvatarURL string `json:"avatar_url" validate:"omitempty,url,max=500"`
}

type ListChildrenRequest struct {
	Grade     string `form:"grade" json:"grade"`
	Limit     int    `form:"limit" json:"limit" validate:"omitempty,min=1,max=100"`
	Offset    int    `form:"offset" json:"offset" validate:"omitempty,min=0"`
	SortBy    string `form:"sort_by" json:"sort_by" validate:"omitempty,oneof=created_at name age"`
	SortOrder string `form:"sort_order" json:"sort_order" validate:"omitempty,oneof=asc desc"`
}

type StartSessionRequest struct {
	ChildID uint `json:"child_id" validate:"required"`
}

type AnswerRequest struct {
	QuestionID string `json:"question_id" validate:"required"`
	OptionID   string `json:"option_id" validate:"required"`
}

type SubmitResultRequest struct {
	ChildID       uint                      `json:"child_id" validate:"required"`
	SessionID     string                    `json:"session_id,omitempty"`
	Outcomes      []mastery.QuestionOutcome `json:"outcomes" validate:"required,min=1,dive"`
	AutoSubmitted bool                      `json:"auto_submitted"`
	SubmittedAt   *time.Time                `json:"submitted_at,omitempty"`
}

type EvaluateRequest struct {
	Outcomes  []mastery.QuestionOutcome `json:"outcomes" validate:"required,min=1,dive"`
	Threshold *float64                  `json:"threshold,omitempty" validate:"omitempty,gte=0,lte=100"`
}

type ListResultsRequest struct {
	DateFrom *time.Time `form:"date_from" json:"date_from" time_format:"2006-01-02"`
	DateTo   *time.Time `form:"date_to" json:"date_to" time_format:"2006-01-02"`
	Limit    int        `form:"limit" json:"limit" validate:"omitempty,min=1,max=100"`
	Offset   int        `form:"offset" json:"offset" validate:"omitempty,min=0"`
}

// ===== RESPONSES =====

type ChildListResponse struct {
	Children []*models.Child `json:"children"`
	Total    int64           `json:"total"`
	Limit    int             `json:"limit"`
	Offset   int             `json:"offset"`
}

// SessionQuestion is a question as shown to the child, without its answer
type SessionQuestion struct {
	quiz.Question
	Number         int    `json:"number"`
	SelectedOption string `json:"selected_option,omitempty"`
}

type SessionResponse struct {
	ID               string             `json:"id"`
	ChildID          uint               `json:"child_id"`
	Status           quiz.SessionStatus `json:"status"`
	CurrentIndex     int                `json:"current_index"`
	TotalQuestions   int                `json:"total_questions"`
	AnsweredCount    int                `json:"answered_count"`
	RemainingSeconds int                `json:"remaining_seconds"`
	StartedAt        time.Time          `json:"started_at"`
	SubmittedAt      *time.Time         `json:"submitted_at,omitempty"`
	AutoSubmitted    bool               `json:"auto_submitted"`
	Question         *SessionQuestion   `json:"question,omitempty"`
	Result           *ResultResponse    `json:"result,omitempty"`
}

type ConceptResult struct {
	ConceptID        mastery.ConceptID    `json:"concept_id"`
	DisplayName      string               `json:"display_name"`
	Description      string               `json:"description"`
	TotalQuestions   int                  `json:"total_questions"`
	CorrectQuestions int                  `json:"correct_questions"`
	ScorePercent     float64              `json:"score_percent"`
	MasteryLevel     mastery.MasteryLevel `json:"mastery_level"`
}

type ResultResponse struct {
	ID              uint                      `json:"id"`
	ChildID         uint                      `json:"child_id"`
	SessionID       string                    `json:"session_id,omitempty"`
	OverallScore    float64                   `json:"overall_score"`
	TotalQuestions  int                       `json:"total_questions"`
	TotalCorrect    int                       `json:"total_correct"`
	AutoSubmitted   bool                      `json:"auto_submitted"`
	SubmittedAt     time.Time                 `json:"submitted_at"`
	Concepts        []ConceptResult           `json:"concepts"`
	PracticeTargets []mastery.ConceptID       `json:"practice_targets"`
	Outcomes        []mastery.QuestionOutcome `json:"outcomes,omitempty"`
}

type ResultListResponse struct {
	Results []*ResultResponse `json:"results"`
	Total   int64             `json:"total"`
	Limit   int               `json:"limit"`
	Offset  int               `json:"offset"`
}

type EvaluationResponse struct {
	OverallScore    float64             `json:"overall_score"`
	TotalQuestions  int                 `json:"total_questions"`
	TotalCorrect    int                 `json:"total_correct"`
	Threshold       float64             `json:"threshold"`
	Concepts        []ConceptResult     `json:"concepts"`
	PracticeTargets []mastery.ConceptID `json:"practice_targets"`
}

type PlannedActivity struct {
	learningpath.Activity
	Completed bool `json:"completed"`
}

type PlannedDay struct {
	Day        string            `json:"day"`
	Activities []PlannedActivity `json:"activities"`
}

type LearningPathResponse struct {
	ChildID        uint              `json:"child_id"`
	ResultID       *uint             `json:"result_id,omitempty"`
	FocusAreas     []string          `json:"focus_areas"`
	Activities     []PlannedActivity `json:"activities"`
	Days           []PlannedDay      `json:"days"`
	CompletedCount int               `json:"completed_count"`
	Progress       int               `json:"progress"`
}

type DashboardResponse struct {
	Child                 *models.Child           `json:"child"`
	LatestScore           *float64                `json:"latest_score"`
	LatestResultID        *uint                   `json:"latest_result_id,omitempty"`
	LastAssessedAt        *time.Time              `json:"last_assessed_at,omitempty"`
	AssessmentsTaken      int                     `json:"assessments_taken"`
	AverageScore          float64                 `json:"average_score"`
	BestScore             float64                 `json:"best_score"`
	GapAreas              []string                `json:"gap_areas"`
	RecommendedActivities []learningpath.Activity `json:"recommended_activities"`
	CompletedActivities   int64                   `json:"completed_activities"`
}
