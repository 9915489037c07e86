package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/bitpet/bitpet/internal/model"
	"github.com/bitpet/bitpet/internal/pet"
)

// Credentials the mock backend accepts.
const (
	MockOTP      = "-9999"
	MockToken    = "mock-token"
	MockEmail    = "mock@bitpet.dev"
	MockUsername = "mock-username"
)

// The challenge the mock pet poses before eating.
const (
	mockChallengeID   = "mock-challenge-id"
	mockChallengeText = "Your pet wants proof you can still code.\nSort these numbers and type them back: 7 2 9 4"
	mockChallengeAns  = "2 4 7 9"
)

// sharedMock backs every client in the process, so a feed started by one
// request can be completed by the challenge answer of the next.
var sharedMock = NewMockTransport()

// MockTransport is an http.RoundTripper that serves the bitpet API from
// process memory, advancing pet state with the transition model.
type MockTransport struct {
	mu          sync.Mutex
	model       *model.Model
	pet         *pet.Pet
	lastTick    time.Time
	pendingFood int
}

// NewMockTransport creates an empty mock backend. The transition model comes
// from model.Load, so BITPET_MODEL_JSON is honoured.
func NewMockTransport() *MockTransport {
	m, err := model.Load()
	if err != nil {
		m = model.Default()
	}
	return &MockTransport{model: m, lastTick: time.Now()}
}

// RoundTrip dispatches a request to the mock backend.
func (mt *MockTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	mt.mu.Lock()
	defer mt.mu.Unlock()

	if req.URL.Path == LoginPath {
		return mt.login(req), nil
	}
	if !authorised(req) {
		return respond(req, http.StatusUnauthorized, nil), nil
	}

	switch req.URL.Path {
	case LogoutPath:
		return respond(req, http.StatusOK, nil), nil
	case PetExistsPath:
		if mt.pet == nil {
			return respond(req, http.StatusNotFound, nil), nil
		}
		return respond(req, http.StatusOK, nil), nil
	case StatusPath:
		return mt.status(req), nil
	case FeedPath:
		return mt.feed(req), nil
	case ChallengeAnswerPath:
		return mt.answer(req), nil
	case PlayPath:
		return mt.play(req), nil
	case NewPetPath:
		return mt.newPet(req), nil
	case RemovePetPath:
		return mt.removePet(req), nil
	}
	return respond(req, http.StatusNotFound, nil), nil
}

func (mt *MockTransport) login(req *http.Request) *http.Response {
	var body loginRequest
	if err := decodeBody(req, &body); err != nil || body.UserCode != MockOTP {
		return respond(req, http.StatusUnauthorized, nil)
	}
	return respond(req, http.StatusOK, User{
		Username: MockUsername,
		Email:    MockEmail,
		Token:    MockToken,
	})
}

func (mt *MockTransport) status(req *http.Request) *http.Response {
	if mt.pet == nil {
		return respond(req, http.StatusNotFound, nil)
	}
	mt.tick()
	return respond(req, http.StatusOK, mt.pet)
}

func (mt *MockTransport) feed(req *http.Request) *http.Response {
	if mt.pet == nil {
		return respond(req, http.StatusNotFound, nil)
	}
	var body feedRequest
	if err := decodeBody(req, &body); err != nil {
		return respond(req, http.StatusBadRequest, nil)
	}
	if body.Food <= 0 {
		return respond(req, http.StatusOK, FeedResult{Status: FeedStatusNothingToFeed})
	}

	// The pet will not eat until the challenge is answered.
	mt.pendingFood = body.Food
	return respond(req, http.StatusOK, FeedResult{
		Status: FeedStatusAskForChallenge,
		Challenge: &Challenge{
			ID:          mockChallengeID,
			Description: mockChallengeText,
			AnswerType:  "text",
		},
	})
}

func (mt *MockTransport) answer(req *http.Request) *http.Response {
	if mt.pet == nil {
		return respond(req, http.StatusNotFound, nil)
	}
	var body answerRequest
	if err := decodeBody(req, &body); err != nil {
		return respond(req, http.StatusBadRequest, nil)
	}
	if body.ChallengeID != mockChallengeID || strings.TrimSpace(body.Answer) != mockChallengeAns {
		return respond(req, http.StatusOK, AnswerResult{Status: AnswerIncorrect})
	}

	food := mt.pendingFood
	if food == 0 {
		food = 1
	}
	mt.pendingFood = 0

	state := mt.pet.State()
	for n := 0; n < food; n++ {
		mt.model.Apply(state, model.ActionFeed, 0)
	}
	mt.pet.SetState(state)
	mt.pet.LastFedAt = time.Now().UnixMilli()
	mt.pet.Streak++

	return respond(req, http.StatusOK, AnswerResult{
		Status: AnswerCorrect,
		FeedResult: &FeedResult{
			Status: FeedStatusFed,
			Pet:    mt.pet,
		},
	})
}

func (mt *MockTransport) play(req *http.Request) *http.Response {
	if mt.pet == nil {
		return respond(req, http.StatusNotFound, nil)
	}
	state := mt.pet.State()
	mt.model.Apply(state, model.ActionPlay, 0)
	mt.pet.SetState(state)
	return respond(req, http.StatusOK, mt.pet)
}

func (mt *MockTransport) newPet(req *http.Request) *http.Response {
	if mt.pet != nil {
		return respond(req, http.StatusConflict, nil)
	}
	var body newPetRequest
	if err := decodeBody(req, &body); err != nil || body.Name == "" {
		return respond(req, http.StatusBadRequest, nil)
	}

	now := time.Now()
	mt.pet = &pet.Pet{
		UserID:    "mock-user-id",
		ID:        "mock-pet-id",
		Name:      body.Name,
		Level:     0,
		Hunger:    40,
		Energy:    50,
		Happiness: 40,
		CreatedAt: now.UnixMilli(),
		LastFedAt: now.UnixMilli(),
	}
	mt.lastTick = now
	return respond(req, http.StatusOK, mt.pet)
}

func (mt *MockTransport) removePet(req *http.Request) *http.Response {
	if mt.pet == nil {
		return respond(req, http.StatusNotFound, nil)
	}
	mt.pet = nil
	mt.pendingFood = 0
	return respond(req, http.StatusOK, nil)
}

// tick lets time pass for the pet between requests.
func (mt *MockTransport) tick() {
	now := time.Now()
	elapsed := now.Sub(mt.lastTick).Hours()
	if elapsed <= 0 {
		return
	}
	state := mt.pet.State()
	mt.model.Apply(state, model.ActionTick, elapsed)
	mt.pet.SetState(state)
	mt.lastTick = now
}

func authorised(req *http.Request) bool {
	return req.Header.Get("Authorization") == "Bearer "+MockToken
}

func decodeBody(req *http.Request, out any) error {
	defer func() { _ = req.Body.Close() }()
	return json.NewDecoder(req.Body).Decode(out)
}

func respond(req *http.Request, status int, body any) *http.Response {
	var payload []byte
	if body != nil {
		payload, _ = json.Marshal(body)
	}
	return &http.Response{
		StatusCode: status,
		Status:     http.StatusText(status),
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(bytes.NewReader(payload)),
		Request:    req,
	}
}
