// ABOUTME: Wire types for the codementor REST API
// ABOUTME: JSON shapes match the backend's auth, problem, and health resources

package client

// User is the identity record for an account
type User struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Bio       string `json:"bio,omitempty"`
	AvatarURL string `json:"avatar_url,omitempty"`
	CreatedAt string `json:"created_at"`
}

// AuthTokens is the opaque bearer token pair returned by login/register
type AuthTokens struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// LoginRequest is the credential payload for POST /auth/login/
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RegisterRequest is the payload for POST /auth/register/
// PasswordConfirm is forwarded as-is; equality is checked server-side
type RegisterRequest struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	PasswordConfirm string `json:"password_confirm"`
}

// RegisterResponse carries the created user plus its token pair
type RegisterResponse struct {
	User   User       `json:"user"`
	Tokens AuthTokens `json:"tokens"`
}

// ProfileUpdate is a partial update for PATCH /auth/profile/update/
// Nil fields are omitted from the request body
type ProfileUpdate struct {
	Bio       *string `json:"bio,omitempty"`
	AvatarURL *string `json:"avatar_url,omitempty"`
}

// Difficulty values used by the backend; the client renders but never validates
const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

// Example is one worked input/output pair attached to a problem
type Example struct {
	Input       string `json:"input"`
	Output      string `json:"output"`
	Explanation string `json:"explanation,omitempty"`
}

// Problem is a coding problem as served by GET /problems/
type Problem struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	Difficulty  string    `json:"difficulty"`
	Tags        []string  `json:"tags"`
	Examples    []Example `json:"examples"`
	Constraints string    `json:"constraints"`
	StarterCode string    `json:"starter_code"`
	Hints       []string  `json:"hints"`
	CreatedAt   string    `json:"created_at"`
	UpdatedAt   string    `json:"updated_at"`
}

// Submission statuses; the server is authoritative
const (
	StatusPending     = "pending"
	StatusAccepted    = "accepted"
	StatusWrongAnswer = "wrong_answer"
	StatusError       = "error"
)

// Submission is a solution attempt as returned by the backend
type Submission struct {
	ID           int64  `json:"id"`
	ProblemID    int64  `json:"problem"`
	ProblemTitle string `json:"problem_title"`
	Username     string `json:"username"`
	Code         string `json:"code"`
	Language     string `json:"language"`
	Status       string `json:"status"`
	Runtime      *int   `json:"runtime,omitempty"`
	Memory       *int   `json:"memory,omitempty"`
	ErrorMessage string `json:"error_message,omitempty"`
	SubmittedAt  string `json:"submitted_at"`
}

// SubmissionRequest is the payload for POST /problems/submit/
type SubmissionRequest struct {
	ProblemID int64  `json:"problem_id"`
	Code      string `json:"code"`
	Language  string `json:"language"`
}

// ProblemFilters are optional query parameters for listing problems
// Zero-value fields are omitted from the query string
type ProblemFilters struct {
	Difficulty string
	Tags       string
}

// HealthStatus is the triad returned by GET /health/
type HealthStatus struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Cache    string `json:"cache"`
}
