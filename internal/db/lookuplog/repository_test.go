package lookuplog_test

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"ulascansenturk/weather-lookup/internal/db/lookuplog"
	"ulascansenturk/weather-lookup/internal/service"
)

type LookupRepositorySuite struct {
	suite.Suite
	DB   *gorm.DB
	mock sqlmock.Sqlmock
	repo lookuplog.Repository
}

func (s *LookupRepositorySuite) SetupSuite() {
	var err error

	var db *sql.DB
	db, s.mock, err = sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	s.Require().NoError(err)

	dialector := postgres.New(postgres.Config{
		DSN:                  "sqlmock_db_0",
		DriverName:           "postgres",
		Conn:                 db,
		PreferSimpleProtocol: true,
	})

	s.DB, err = gorm.Open(dialector, &gorm.Config{})
	s.Require().NoError(err)

	s.repo = lookuplog.NewRepository(s.DB)
}

func (s *LookupRepositorySuite) TearDownTest() {
	s.Require().NoError(s.mock.ExpectationsWereMet())
}

func (s *LookupRepositorySuite) TestLogLookup() {
	snapshot := service.WeatherSnapshot{
		LocationLabel: "Berlin, Germany",
		Temperature:   18.3,
		WindSpeed:     9.1,
		Condition:     "Partly cloudy",
		Icon:          "partlycloudy",
	}

	s.Run("Successfully logs a lookup", func() {
		s.mock.ExpectBegin()
		s.mock.ExpectQuery(`INSERT INTO "weather_lookups"`).
			WithArgs(
				snapshot.LocationLabel,
				snapshot.Temperature,
				snapshot.WindSpeed,
				snapshot.Condition,
				snapshot.Icon,
				sqlmock.AnyArg(),
			).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
		s.mock.ExpectCommit()

		err := s.repo.LogLookup(snapshot)

		s.Require().NoError(err)
	})

	s.Run("Returns error when database operation fails", func() {
		dbError := errors.New("database error")

		s.mock.ExpectBegin()
		s.mock.ExpectQuery(`INSERT INTO "weather_lookups"`).
			WithArgs(
				snapshot.LocationLabel,
				snapshot.Temperature,
				snapshot.WindSpeed,
				snapshot.Condition,
				snapshot.Icon,
				sqlmock.AnyArg(),
			).
			WillReturnError(dbError)
		s.mock.ExpectRollback()

		err := s.repo.LogLookup(snapshot)

		s.Require().Error(err)
		s.Require().Equal("database error", err.Error())
	})
}

func TestLookupRepositorySuite(t *testing.T) {
	suite.Run(t, new(LookupRepositorySuite))
}
