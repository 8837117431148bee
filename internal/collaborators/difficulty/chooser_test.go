package difficulty_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/duelhall/encounter-api/internal/collaborators/difficulty"
	"github.com/duelhall/encounter-api/internal/errors"
)

type ChooserTestSuite struct {
	suite.Suite
	ctx context.Context
}

func TestChooserSuite(t *testing.T) {
	suite.Run(t, new(ChooserTestSuite))
}

func (s *ChooserTestSuite) SetupTest() {
	s.ctx = context.Background()
}

func (s *ChooserTestSuite) newServer(dc int) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req map[string]string
		s.Require().NoError(json.NewDecoder(r.Body).Decode(&req))
		s.Assert().NotEmpty(req["label"])
		_ = json.NewEncoder(w).Encode(map[string]int{"dc": dc})
	}))
}

func (s *ChooserTestSuite) TestChooseDC() {
	server := s.newServer(20)
	defer server.Close()

	chooser, err := difficulty.NewHTTPChooser(&difficulty.Config{Endpoint: server.URL})
	s.Require().NoError(err)

	dc, err := chooser.ChooseDC(s.ctx, "climb", "a rain-slick cliff face at night")
	s.Require().NoError(err)
	s.Assert().Equal(20, dc)
}

func (s *ChooserTestSuite) TestChooseDCNonCanonical() {
	server := s.newServer(17)
	defer server.Close()

	chooser, err := difficulty.NewHTTPChooser(&difficulty.Config{Endpoint: server.URL})
	s.Require().NoError(err)

	_, err = chooser.ChooseDC(s.ctx, "climb", "a cliff")
	s.Require().Error(err)
	s.Assert().True(errors.IsUnavailable(err))
}

func (s *ChooserTestSuite) TestChooseDCUnreachable() {
	chooser, err := difficulty.NewHTTPChooser(&difficulty.Config{Endpoint: "http://127.0.0.1:1"})
	s.Require().NoError(err)

	_, err = chooser.ChooseDC(s.ctx, "climb", "a cliff")
	s.Require().Error(err)
	s.Assert().True(errors.IsUnavailable(err))
}

func (s *ChooserTestSuite) TestIsCanonical() {
	for _, dc := range difficulty.CanonicalDCs {
		s.Assert().True(difficulty.IsCanonical(dc))
	}
	for _, dc := range []int{0, 7, 13, 17, 35, -5} {
		s.Assert().False(difficulty.IsCanonical(dc))
	}
}

func (s *ChooserTestSuite) TestConfigValidation() {
	_, err := difficulty.NewHTTPChooser(&difficulty.Config{})
	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidArgument(err))
}
