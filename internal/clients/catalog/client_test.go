package catalog_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/LittlestCube/toontown-archipelago/internal/clients/catalog"
	"github.com/LittlestCube/toontown-archipelago/internal/errors"
)

type CatalogTestSuite struct {
	suite.Suite
	client catalog.Client
	ctx    context.Context
}

func TestCatalogSuite(t *testing.T) {
	suite.Run(t, new(CatalogTestSuite))
}

func (s *CatalogTestSuite) SetupTest() {
	var err error
	s.client, err = catalog.New(&catalog.Config{})
	s.Require().NoError(err)
	s.ctx = context.Background()
}

func (s *CatalogTestSuite) TestLookupDefinition() {
	def, err := s.client.LookupDefinition(s.ctx, 4034)
	s.Require().NoError(err)
	s.Equal("Acorn Acres Teleport Access", def.Name)
	s.Equal(catalog.ClassificationProgression, def.Classification)

	def, err = s.client.LookupDefinition(s.ctx, 4048)
	s.Require().NoError(err)
	s.Equal("Fish", def.Name)
}

func (s *CatalogTestSuite) TestLookupMissing() {
	_, err := s.client.LookupDefinition(s.ctx, 99999)
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
	s.Equal(int64(99999), errors.GetMeta(err)["item_id"])
}

func (s *CatalogTestSuite) TestListDefinitionsOrdered() {
	defs, err := s.client.ListDefinitions(s.ctx)
	s.Require().NoError(err)
	s.Require().NotEmpty(defs)
	s.Equal(int64(4000), defs[0].ID)
	for i := 1; i < len(defs); i++ {
		s.Less(defs[i-1].ID, defs[i].ID)
	}
}

func (s *CatalogTestSuite) TestParseRejects() {
	testCases := []struct {
		name string
		yaml string
	}{
		{"empty", "items: []\n"},
		{"bad classification", "items:\n  - {id: 1, name: A, classification: legendary}\n"},
		{"duplicate id", "items:\n  - {id: 1, name: A}\n  - {id: 1, name: B}\n"},
		{"duplicate name", "items:\n  - {id: 1, name: A}\n  - {id: 2, name: A}\n"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := catalog.Parse([]byte(tc.yaml))
			s.Require().Error(err)
			s.True(errors.IsInvalidArgument(err))
		})
	}
}

func (s *CatalogTestSuite) TestNewMissingFile() {
	_, err := catalog.New(&catalog.Config{Path: "/nonexistent/items.yaml"})
	s.Error(err)
}
