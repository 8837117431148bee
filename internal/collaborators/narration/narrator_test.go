package narration_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/duelhall/encounter-api/internal/collaborators/narration"
	"github.com/duelhall/encounter-api/internal/entities"
	"github.com/duelhall/encounter-api/internal/errors"
)

type NarratorTestSuite struct {
	suite.Suite
	ctx context.Context
}

func TestNarratorSuite(t *testing.T) {
	suite.Run(t, new(NarratorTestSuite))
}

func (s *NarratorTestSuite) SetupTest() {
	s.ctx = context.Background()
}

func (s *NarratorTestSuite) testSession() *entities.Session {
	return &entities.Session{
		ID:        "sess_123",
		Character: &entities.Character{Name: "Brynn", CurrentHP: 20},
		Monster:   &entities.Monster{Name: "Goblin", CurrentHP: 2},
		Round:     2,
		Log:       []string{"combat begins", "Brynn hits the goblin"},
	}
}

func (s *NarratorTestSuite) TestNarrate() {
	var received map[string]json.RawMessage
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.Require().NoError(json.NewDecoder(r.Body).Decode(&received))
		_ = json.NewEncoder(w).Encode(map[string]string{"narration": "The blade bites deep."})
	}))
	defer server.Close()

	narrator, err := narration.NewHTTPNarrator(&narration.Config{Endpoint: server.URL})
	s.Require().NoError(err)

	text, err := narrator.Narrate(s.ctx, s.testSession())
	s.Require().NoError(err)
	s.Assert().Equal("The blade bites deep.", text)

	var lastLine string
	s.Require().NoError(json.Unmarshal(received["last_log_line"], &lastLine))
	s.Assert().Equal("Brynn hits the goblin", lastLine)
}

func (s *NarratorTestSuite) TestNarrateServerError() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	narrator, err := narration.NewHTTPNarrator(&narration.Config{Endpoint: server.URL})
	s.Require().NoError(err)

	_, err = narrator.Narrate(s.ctx, s.testSession())
	s.Require().Error(err)
	s.Assert().True(errors.IsUnavailable(err))
}

func (s *NarratorTestSuite) TestNarrateUnreachable() {
	narrator, err := narration.NewHTTPNarrator(&narration.Config{Endpoint: "http://127.0.0.1:1"})
	s.Require().NoError(err)

	_, err = narrator.Narrate(s.ctx, s.testSession())
	s.Require().Error(err)
	s.Assert().True(errors.IsUnavailable(err))
}

func (s *NarratorTestSuite) TestNarrateMalformedResponse() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer server.Close()

	narrator, err := narration.NewHTTPNarrator(&narration.Config{Endpoint: server.URL})
	s.Require().NoError(err)

	_, err = narrator.Narrate(s.ctx, s.testSession())
	s.Require().Error(err)
	s.Assert().True(errors.IsUnavailable(err))
}

func (s *NarratorTestSuite) TestConfigValidation() {
	_, err := narration.NewHTTPNarrator(&narration.Config{})
	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidArgument(err))
}
