// Package models defines the data structures used throughout the application.
//
// Go Pattern: Models are plain structs with JSON tags for serialization.
// The `db` tags work with sqlx for database column mapping; the `json` tags
// control the API representation. No ORM magic — the database package
// handles persistence with raw SQL.
package models

import (
	"time"
)

// BookType distinguishes uploaded PDFs from pasted text books.
// Go Pattern: String constants instead of enums — define a type alias
// and named constants.
type BookType string

const (
	BookTypePDF  BookType = "pdf"
	BookTypeText BookType = "text"
)

// AnalysisStatus represents the processing state of an AI keyword analysis.
type AnalysisStatus string

const (
	AnalysisPending    AnalysisStatus = "pending"
	AnalysisProcessing AnalysisStatus = "processing"
	AnalysisCompleted  AnalysisStatus = "completed"
	AnalysisFailed     AnalysisStatus = "failed"
)

// User represents a registered reader.
type User struct {
	ID           string    `json:"id" db:"id"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"` // "-" means never serialize to JSON
	Name         string    `json:"name" db:"name"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// Book represents one entry in a user's library.
// PDF books carry a storage key (FileKey) pointing at the object store;
// text books carry their content inline. Immutable after creation except
// deletion.
type Book struct {
	ID         string    `json:"id" db:"id"`
	UserID     string    `json:"user_id" db:"user_id"`
	Title      string    `json:"title" db:"title"`
	Author     *string   `json:"author,omitempty" db:"author"` // Pointer = nullable
	Content    string    `json:"content,omitempty" db:"content"`
	FileKey    *string   `json:"file_key,omitempty" db:"file_key"`
	TotalPages int       `json:"total_pages" db:"total_pages"`
	BookType   BookType  `json:"book_type" db:"book_type"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}

// ReadingProgress is the per-(user, book) bookmark row.
// PagesRead is a monotonic high-water-mark: it never decreases, even when
// the reader jumps back to an earlier page.
type ReadingProgress struct {
	ID          string    `json:"id" db:"id"`
	UserID      string    `json:"user_id" db:"user_id"`
	BookID      string    `json:"book_id" db:"book_id"`
	CurrentPage int       `json:"current_page" db:"current_page"`
	PagesRead   int       `json:"pages_read" db:"pages_read"`
	LastReadAt  time.Time `json:"last_read_at" db:"last_read_at"`
}

// BookWithProgress embeds the reader's progress into a library listing row.
type BookWithProgress struct {
	Book
	CurrentPage *int       `json:"current_page,omitempty" db:"current_page"`
	PagesRead   *int       `json:"pages_read,omitempty" db:"pages_read"`
	LastReadAt  *time.Time `json:"last_read_at,omitempty" db:"last_read_at"`
}

// UserStats holds per-user keyword interaction counters.
// Counters are incremented atomically at the database (single upsert
// statement), never read-then-written in application code.
type UserStats struct {
	UserID        string    `json:"user_id" db:"user_id"`
	KeywordClicks int       `json:"keyword_clicks" db:"keyword_clicks"`
	HubbleClicks  int       `json:"hubble_clicks" db:"hubble_clicks"`
	ChandraClicks int       `json:"chandra_clicks" db:"chandra_clicks"`
	WebbClicks    int       `json:"webb_clicks" db:"webb_clicks"`
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at"`
}

// UserAchievement is a persisted unlocked-badge row. These rows are a
// display cache; the derived booleans computed from current counts are the
// source of truth and missing rows are resynchronized on read.
type UserAchievement struct {
	ID         string    `json:"id" db:"id"`
	UserID     string    `json:"user_id" db:"user_id"`
	BadgeType  string    `json:"badge_type" db:"badge_type"`
	UnlockedAt time.Time `json:"unlocked_at" db:"unlocked_at"`
}

// BookKeyword is one AI- or locally-extracted keyword with enrichment.
type BookKeyword struct {
	ID         string    `json:"id" db:"id"`
	BookID     string    `json:"book_id" db:"book_id"`
	Keyword    string    `json:"keyword" db:"keyword"`
	Definition string    `json:"definition" db:"definition"`
	Category   string    `json:"category" db:"category"`
	Example    *string   `json:"example,omitempty" db:"example"`
	Source     string    `json:"source" db:"source"` // "ai" or "frequency"
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}

// KeywordAnalysis tracks the state of an async keyword extraction job
// for a single book.
type KeywordAnalysis struct {
	BookID       string         `json:"book_id" db:"book_id"`
	Status       AnalysisStatus `json:"status" db:"status"`
	ErrorMessage string         `json:"error_message,omitempty" db:"error_message"`
	ModelUsed    string         `json:"model_used,omitempty" db:"model_used"`
	UpdatedAt    time.Time      `json:"updated_at" db:"updated_at"`
}

// ChatSession groups the messages of one assistant conversation.
// BookID is optional — a session may be anchored to a book for context.
type ChatSession struct {
	ID        string    `json:"id" db:"id"`
	UserID    string    `json:"user_id" db:"user_id"`
	BookID    *string   `json:"book_id,omitempty" db:"book_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// ChatMessage is one turn in an assistant conversation.
type ChatMessage struct {
	ID        string    `json:"id" db:"id"`
	SessionID string    `json:"session_id" db:"session_id"`
	Role      string    `json:"role" db:"role"` // "user" or "assistant"
	Content   string    `json:"content" db:"content"`
	ModelUsed string    `json:"model_used,omitempty" db:"model_used"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// --- Request/Response DTOs ---
// Go Pattern: Separate structs for API input/output vs database models.
// This keeps the API contract independent of the database schema.

// RegisterRequest is the JSON body for POST /api/v1/auth/register.
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Name     string `json:"name" binding:"required"`
}

// LoginRequest is the JSON body for POST /api/v1/auth/login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse carries the JWT and the user it belongs to.
type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// CreateTextBookRequest is the JSON body for POST /api/v1/books.
type CreateTextBookRequest struct {
	Title      string `json:"title" binding:"required"`
	Author     string `json:"author,omitempty"`
	Content    string `json:"content" binding:"required"`
	TotalPages int    `json:"total_pages,omitempty"` // 0 = estimate from content
}

// UpdateProgressRequest is the JSON body for POST /api/v1/books/:id/progress.
// Page carries no binding rule: an explicit 0 must reach the range check
// and come back as out-of-range, not as a missing field.
type UpdateProgressRequest struct {
	Page int `json:"page"`
}

// ReaderView is the response for GET /api/v1/books/:id/reader.
// Text books include their paginated content; PDF books include a view URL.
type ReaderView struct {
	Book        Book     `json:"book"`
	TotalPages  int      `json:"total_pages"`
	CurrentPage int      `json:"current_page"`
	PagesRead   int      `json:"pages_read"`
	Pages       []string `json:"pages,omitempty"`
	ViewURL     string   `json:"view_url,omitempty"`
}

// ViewURLResponse is the response for GET /api/v1/books/:id/view-url.
type ViewURLResponse struct {
	URL       string     `json:"url"`
	Signed    bool       `json:"signed"` // false = public-URL fallback
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

// KeywordClickRequest is the JSON body for POST /api/v1/stats/keyword-click.
type KeywordClickRequest struct {
	Term string `json:"term" binding:"required"`
}

// KeywordClickResponse reports the updated counters and whether the clicked
// term resolved to a glossary entry (absence is a fallback, not an error).
type KeywordClickResponse struct {
	Found     bool           `json:"found"`
	Entry     *GlossaryEntry `json:"entry,omitempty"`
	Telescope string         `json:"telescope,omitempty"`
	Stats     UserStats      `json:"stats"`
}

// GlossaryEntry is a fixed vocabulary entry addressed by normalized key.
type GlossaryEntry struct {
	Term       string `json:"term"`
	Definition string `json:"definition"`
	Category   string `json:"category,omitempty"`
}

// Badge is one evaluated achievement.
type Badge struct {
	Type        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Earned      bool   `json:"earned"`
	Threshold   int    `json:"threshold,omitempty"`
	Progress    int    `json:"progress"`
}

// AchievementsResponse is the response for GET /api/v1/achievements.
type AchievementsResponse struct {
	Badges   []Badge           `json:"badges"`
	Unlocked []UserAchievement `json:"unlocked"`
}

// LeaderboardEntry is one ranked row of the composite leaderboard.
type LeaderboardEntry struct {
	UserID        string `json:"user_id"`
	Name          string `json:"name"`
	Achievements  int    `json:"achievements"`
	Books         int    `json:"books"`
	KeywordClicks int    `json:"keyword_clicks"`
	TotalScore    int    `json:"total_score"`
}

// ScoreboardEntry is one ranked row of a single-metric board
// (daily pages, weekly keyword clicks, collector badge counts).
type ScoreboardEntry struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	Value  int    `json:"value"`
}

// CreateChatMessageRequest is the JSON body for POST /api/v1/chat.
type CreateChatMessageRequest struct {
	Message string `json:"message" binding:"required"`
	BookID  string `json:"book_id,omitempty"`
}

// ChatResponse bundles a session with messages.
type ChatResponse struct {
	Session  ChatSession   `json:"session"`
	Messages []ChatMessage `json:"messages"`
}

// ColoringImageRequest is the JSON body for POST /api/v1/coloring-images.
type ColoringImageRequest struct {
	Prompt string `json:"prompt" binding:"required"`
}

// ColoringImageResponse carries the generated image as a data URL.
type ColoringImageResponse struct {
	ImageURL string `json:"image_url"`
}

// ErrorResponse is a standard error format for all API errors.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// HealthResponse is returned by the health check endpoint.
type HealthResponse struct {
	Status   string `json:"status"`
	Version  string `json:"version"`
	Database string `json:"database"`
	Workers  int    `json:"workers"`
}
