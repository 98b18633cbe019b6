//go:build integration
// +build integration

package repository

import (
	"testing"

	"frc-scout-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// MatchScoreRepositoryTestSuite tests the MatchScoreRepository
type MatchScoreRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *MatchScoreRepository
	sessionRepo   *SessionRepository
	factories     *testutils.FactorySet
	sessionID     uuid.UUID
}

// SetupSuite runs before all tests in the suite
func (suite *MatchScoreRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewMatchScoreRepository(suite.baseTestSuite.DB)
	suite.sessionRepo = NewSessionRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *MatchScoreRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test and creates a fresh session
func (suite *MatchScoreRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()

	session, err := suite.sessionRepo.GetOrCreate("match-tests")
	suite.Require().NoError(err)
	suite.sessionID = session.ID
}

// TearDownTest runs after each test
func (suite *MatchScoreRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestInsert tests recording a single match score
func (suite *MatchScoreRepositoryTestSuite) TestInsert() {
	score := suite.factories.MatchScore.Create(suite.sessionID)

	err := suite.repo.Insert(score)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, score.ID)
	suite.NotZero(score.CreatedAt)
}

// TestInsertDuplicatesAllowed tests that re-scouting the same match and team
// produces a second independent row
func (suite *MatchScoreRepositoryTestSuite) TestInsertDuplicatesAllowed() {
	first := suite.factories.MatchScore.WithMatch(suite.sessionID, 12, "254")
	suite.NoError(suite.repo.Insert(first))

	second := suite.factories.MatchScore.WithMatch(suite.sessionID, 12, "254")
	second.TeleopHigh = 9
	suite.NoError(suite.repo.Insert(second))

	scores, err := suite.repo.ListByTeam(suite.sessionID, "254")
	suite.NoError(err)
	suite.Len(scores, 2)
	suite.NotEqual(scores[0].ID, scores[1].ID)
}

// TestListBySessionOrdering tests ordering by match number then team
func (suite *MatchScoreRepositoryTestSuite) TestListBySessionOrdering() {
	for _, tc := range []struct {
		match int
		team  string
	}{
		{3, "971"},
		{1, "254"},
		{3, "118"},
		{2, "1678"},
	} {
		score := suite.factories.MatchScore.WithMatch(suite.sessionID, tc.match, tc.team)
		suite.NoError(suite.repo.Insert(score))
	}

	scores, err := suite.repo.ListBySession(suite.sessionID)
	suite.NoError(err)
	suite.Require().Len(scores, 4)
	suite.Equal(1, scores[0].MatchNumber)
	suite.Equal(2, scores[1].MatchNumber)
	suite.Equal(3, scores[2].MatchNumber)
	suite.Equal("118", scores[2].FRCTeam)
	suite.Equal("971", scores[3].FRCTeam)
}

// TestListByTeamExactMatch tests that listing by team does not match substrings
func (suite *MatchScoreRepositoryTestSuite) TestListByTeamExactMatch() {
	a := suite.factories.MatchScore.WithMatch(suite.sessionID, 1, "254")
	suite.NoError(suite.repo.Insert(a))

	b := suite.factories.MatchScore.WithMatch(suite.sessionID, 1, "2540")
	suite.NoError(suite.repo.Insert(b))

	scores, err := suite.repo.ListByTeam(suite.sessionID, "254")
	suite.NoError(err)
	suite.Require().Len(scores, 1)
	suite.Equal("254", scores[0].FRCTeam)
}

// TestSearchByTeamSubstring tests substring matching for the search page
func (suite *MatchScoreRepositoryTestSuite) TestSearchByTeamSubstring() {
	for _, team := range []string{"254", "2540", "1678"} {
		score := suite.factories.MatchScore.WithMatch(suite.sessionID, 1, team)
		suite.NoError(suite.repo.Insert(score))
	}

	scores, err := suite.repo.SearchByTeam(suite.sessionID, "254")
	suite.NoError(err)
	suite.Len(scores, 2)
}

// TestCountDistinctTeams tests that duplicate rows per team count once
func (suite *MatchScoreRepositoryTestSuite) TestCountDistinctTeams() {
	for _, tc := range []struct {
		match int
		team  string
	}{
		{1, "254"},
		{2, "254"},
		{1, "1678"},
	} {
		score := suite.factories.MatchScore.WithMatch(suite.sessionID, tc.match, tc.team)
		suite.NoError(suite.repo.Insert(score))
	}

	count, err := suite.repo.CountDistinctTeams(suite.sessionID)
	suite.NoError(err)
	suite.Equal(int64(2), count)
}

// TestCountDistinctTeamsEmpty tests counting with no recorded scores
func (suite *MatchScoreRepositoryTestSuite) TestCountDistinctTeamsEmpty() {
	count, err := suite.repo.CountDistinctTeams(suite.sessionID)

	suite.NoError(err)
	suite.Equal(int64(0), count)
}

// Run the test suite
func TestMatchScoreRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(MatchScoreRepositoryTestSuite))
}
