package api

import "github.com/bitpet/bitpet/internal/pet"

// Paths of the bitpet API, shared by the client and the mock transport.
const (
	LoginPath           = "/v1/login"
	LogoutPath          = "/v1/logout"
	PetExistsPath       = "/v1/pet"
	StatusPath          = "/v1/pet/status"
	FeedPath            = "/v1/pet/feed"
	PlayPath            = "/v1/pet/play"
	NewPetPath          = "/v1/pet/new"
	RemovePetPath       = "/v1/pet/remove"
	ChallengeAnswerPath = "/v1/pet/challenge-answer"
)

// User is the account payload returned by login.
type User struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Token    string `json:"token"`
}

// FeedStatus tells the client how a feed request resolved.
type FeedStatus string

const (
	// FeedStatusFed means the commits were consumed and the pet state moved.
	FeedStatusFed FeedStatus = "fed"
	// FeedStatusAskForChallenge means the pet wants a coding challenge
	// answered before it eats.
	FeedStatusAskForChallenge FeedStatus = "ask_for_challenge"
	// FeedStatusNothingToFeed means no commits were offered.
	FeedStatusNothingToFeed FeedStatus = "nothing_to_feed"
)

// Challenge is a coding exercise the pet poses before eating.
type Challenge struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	AnswerType  string `json:"answer_type"`
}

// FeedResult is the response to a feed request.
type FeedResult struct {
	Status    FeedStatus `json:"status"`
	Challenge *Challenge `json:"challenge,omitempty"`
	Pet       *pet.Pet   `json:"pet,omitempty"`
}

// AnswerStatus grades a challenge answer.
type AnswerStatus string

const (
	AnswerCorrect   AnswerStatus = "correct"
	AnswerIncorrect AnswerStatus = "incorrect"
)

// AnswerResult is the response to a challenge answer; on a correct answer it
// carries the completed feed.
type AnswerResult struct {
	Status     AnswerStatus `json:"status"`
	FeedResult *FeedResult  `json:"feed_result,omitempty"`
}

type loginRequest struct {
	UserCode string `json:"user_code"`
}

type feedRequest struct {
	Food int `json:"food"`
}

type newPetRequest struct {
	Name string `json:"name"`
}

type answerRequest struct {
	ChallengeID string `json:"challenge_id"`
	Answer      string `json:"answer"`
}
