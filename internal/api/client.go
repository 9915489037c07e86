// Package api is the bitpet API client. In this build every client talks to
// the in-process mock transport; no request leaves the process.
package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/bitpet/bitpet/internal/auth"
	"github.com/bitpet/bitpet/internal/errtrack"
	"github.com/bitpet/bitpet/internal/pet"
)

const defaultBaseURL = "https://api.bitpet.dev"

// Client calls the bitpet API with a bearer token.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
}

// Option configures a Client.
type Option func(*Client)

// WithTransport swaps the HTTP transport; tests use this to inject a fresh
// mock.
func WithTransport(rt http.RoundTripper) Option {
	return func(c *Client) {
		c.httpClient = &http.Client{Transport: rt}
	}
}

// NewClient creates a client authenticated by token. Login does not need a
// token; pass the empty string.
func NewClient(token string, opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Transport: sharedMock},
		baseURL:    defaultBaseURL,
		token:      token,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Login exchanges a one-time code for the account's user info.
func (c *Client) Login(code string) (*User, error) {
	return errtrack.Do(func() (*User, error) {
		resp, err := c.do(http.MethodPost, LoginPath, loginRequest{UserCode: code})
		if err != nil {
			return nil, err
		}
		defer func() { _ = resp.Body.Close() }()

		switch resp.StatusCode {
		case http.StatusOK:
			var user User
			if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
				return nil, &RequestError{Err: err}
			}
			return &user, nil
		case http.StatusUnauthorized:
			return nil, &auth.InvalidCodeError{}
		default:
			return nil, unexpected(resp)
		}
	})
}

// Logout invalidates the session token.
func (c *Client) Logout() error {
	return errtrack.Err(c.post(LogoutPath, nil))
}

// PetExists reports whether the account has a pet.
func (c *Client) PetExists() (bool, error) {
	return errtrack.Do(func() (bool, error) {
		resp, err := c.do(http.MethodGet, PetExistsPath, nil)
		if err != nil {
			return false, err
		}
		defer func() { _ = resp.Body.Close() }()

		switch resp.StatusCode {
		case http.StatusOK:
			return true, nil
		case http.StatusNotFound:
			return false, nil
		case http.StatusUnauthorized:
			return false, &auth.SessionExpiredError{}
		default:
			return false, unexpected(resp)
		}
	})
}

// Status returns the pet's current state, or nil if the account has no pet.
func (c *Client) Status() (*pet.Pet, error) {
	return errtrack.Do(func() (*pet.Pet, error) {
		return c.petResponse(http.MethodGet, StatusPath, nil)
	})
}

// Feed offers food (commit count) to the pet. The pet may demand a coding
// challenge before eating.
func (c *Client) Feed(food int) (*FeedResult, error) {
	return errtrack.Do(func() (*FeedResult, error) {
		resp, err := c.do(http.MethodPost, FeedPath, feedRequest{Food: food})
		if err != nil {
			return nil, err
		}
		defer func() { _ = resp.Body.Close() }()

		var result FeedResult
		if err := c.decode(resp, &result); err != nil {
			return nil, err
		}
		return &result, nil
	})
}

// AnswerChallenge submits a challenge answer; a correct one completes the
// pending feed.
func (c *Client) AnswerChallenge(challengeID, answer string) (*AnswerResult, error) {
	return errtrack.Do(func() (*AnswerResult, error) {
		resp, err := c.do(http.MethodPost, ChallengeAnswerPath, answerRequest{ChallengeID: challengeID, Answer: answer})
		if err != nil {
			return nil, err
		}
		defer func() { _ = resp.Body.Close() }()

		var result AnswerResult
		if err := c.decode(resp, &result); err != nil {
			return nil, err
		}
		return &result, nil
	})
}

// Play plays with the pet and returns its new state.
func (c *Client) Play() (*pet.Pet, error) {
	return errtrack.Do(func() (*pet.Pet, error) {
		return c.petResponse(http.MethodPost, PlayPath, nil)
	})
}

// NewPet adopts a pet. Adopting over an existing pet fails.
func (c *Client) NewPet(name string) (*pet.Pet, error) {
	return errtrack.Do(func() (*pet.Pet, error) {
		resp, err := c.do(http.MethodPost, NewPetPath, newPetRequest{Name: name})
		if err != nil {
			return nil, err
		}
		defer func() { _ = resp.Body.Close() }()

		if resp.StatusCode == http.StatusConflict {
			return nil, errtrack.New("You already have a pet! Let it go first with 'bitpet remove-pet'.")
		}
		var p pet.Pet
		if err := c.decode(resp, &p); err != nil {
			return nil, err
		}
		return &p, nil
	})
}

// RemovePet lets the pet go.
func (c *Client) RemovePet() error {
	return errtrack.Err(c.post(RemovePetPath, nil))
}

// petResponse handles endpoints whose success body is a pet and whose 404
// means "no pet".
func (c *Client) petResponse(method, path string, body any) (*pet.Pet, error) {
	resp, err := c.do(method, path, body)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	var p pet.Pet
	if err := c.decode(resp, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// post sends a body-less-response request and maps the status.
func (c *Client) post(path string, body any) error {
	resp, err := c.do(http.MethodPost, path, body)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	switch resp.StatusCode {
	case http.StatusOK:
		return nil
	case http.StatusUnauthorized:
		return &auth.SessionExpiredError{}
	default:
		return unexpected(resp)
	}
}

func (c *Client) do(method, path string, body any) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, &RequestError{Err: err}
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, c.baseURL+path, reader)
	if err != nil {
		return nil, &RequestError{Err: err}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	log.Debug().Str("method", method).Str("path", path).Msg("api request")
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &RequestError{Err: err}
	}
	return resp, nil
}

// decode maps a 200 into out and everything else into an error.
func (c *Client) decode(resp *http.Response, out any) error {
	switch resp.StatusCode {
	case http.StatusOK:
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return &RequestError{Err: err}
		}
		return nil
	case http.StatusUnauthorized:
		return &auth.SessionExpiredError{}
	default:
		return unexpected(resp)
	}
}

func unexpected(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	return &UnexpectedStatusError{Status: resp.StatusCode, Body: string(bytes.TrimSpace(body))}
}
