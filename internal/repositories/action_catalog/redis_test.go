package actioncatalog_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/destinyrpg/destiny-api/internal/entities"
	"github.com/destinyrpg/destiny-api/internal/errors"
	actioncatalog "github.com/destinyrpg/destiny-api/internal/repositories/action_catalog"
	"github.com/destinyrpg/destiny-api/internal/testutils"
)

type CatalogRepositoryTestSuite struct {
	suite.Suite
	repo    actioncatalog.Repository
	cleanup func()
	ctx     context.Context
}

func (s *CatalogRepositoryTestSuite) SetupTest() {
	client, cleanup := testutils.CreateTestRedisClient(s.T())
	s.cleanup = cleanup

	repo, err := actioncatalog.NewRedisRepository(&actioncatalog.Config{
		Client: client,
	})
	s.Require().NoError(err)
	s.repo = repo
	s.ctx = context.Background()
}

func (s *CatalogRepositoryTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *CatalogRepositoryTestSuite) testDefinition(id string) *entities.ActionDefinition {
	return &entities.ActionDefinition{
		ID:          id,
		Name:        "Hunting",
		CardsToDraw: 5,
		SuitWeights: entities.SuitWeights{Spades: 3, Clubs: 2},
		Threshold:   320,
		Rewards: entities.RewardTable{
			Success: map[entities.RewardTier]entities.RewardSpec{
				entities.TierCommon: {XP: 25, Gold: 10, XPPerMargin: 1, MarginCap: 50},
			},
		},
	}
}

func (s *CatalogRepositoryTestSuite) TestCreateAndGet() {
	def := s.testDefinition("hunting")

	createOut, err := s.repo.Create(s.ctx, actioncatalog.CreateInput{Definition: def})
	s.Require().NoError(err)
	s.Equal(def, createOut.Definition)

	getOut, err := s.repo.Get(s.ctx, actioncatalog.GetInput{ID: "hunting"})
	s.Require().NoError(err)
	s.Equal("Hunting", getOut.Definition.Name)
	s.Equal(int32(5), getOut.Definition.CardsToDraw)
	s.Equal(int32(3), getOut.Definition.SuitWeights.Spades)
	s.Equal(int32(25), getOut.Definition.Rewards.Success[entities.TierCommon].XP)
}

func (s *CatalogRepositoryTestSuite) TestCreateDuplicate() {
	def := s.testDefinition("hunting")

	_, err := s.repo.Create(s.ctx, actioncatalog.CreateInput{Definition: def})
	s.Require().NoError(err)

	_, err = s.repo.Create(s.ctx, actioncatalog.CreateInput{Definition: def})
	s.Require().Error(err)
	s.True(errors.IsAlreadyExists(err))
}

func (s *CatalogRepositoryTestSuite) TestGetMissing() {
	_, err := s.repo.Get(s.ctx, actioncatalog.GetInput{ID: "nope"})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *CatalogRepositoryTestSuite) TestList() {
	for _, id := range []string{"stealth", "hunting", "crafting"} {
		_, err := s.repo.Create(s.ctx, actioncatalog.CreateInput{Definition: s.testDefinition(id)})
		s.Require().NoError(err)
	}

	listOut, err := s.repo.List(s.ctx, actioncatalog.ListInput{})
	s.Require().NoError(err)
	s.Require().Len(listOut.Definitions, 3)
	s.Equal("crafting", listOut.Definitions[0].ID)
	s.Equal("hunting", listOut.Definitions[1].ID)
	s.Equal("stealth", listOut.Definitions[2].ID)
}

func (s *CatalogRepositoryTestSuite) TestValidation() {
	_, err := s.repo.Create(s.ctx, actioncatalog.CreateInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Get(s.ctx, actioncatalog.GetInput{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *CatalogRepositoryTestSuite) TestDefaultActionsSeedCleanly() {
	for _, def := range actioncatalog.DefaultActions() {
		_, err := s.repo.Create(s.ctx, actioncatalog.CreateInput{Definition: def})
		s.Require().NoError(err, "seeding %s", def.ID)
		s.GreaterOrEqual(def.CardsToDraw, int32(1))
		s.LessOrEqual(def.CardsToDraw, int32(10))
	}

	listOut, err := s.repo.List(s.ctx, actioncatalog.ListInput{})
	s.Require().NoError(err)
	s.Len(listOut.Definitions, len(actioncatalog.DefaultActions()))
}

func TestCatalogRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(CatalogRepositoryTestSuite))
}
