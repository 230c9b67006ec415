//go:build e2e

package kvstore_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"hotel-portal/internal/infra"
	"hotel-portal/internal/infra/kvstore"
	"hotel-portal/internal/pkg/clock"
)

const (
	pgUser     = "test"
	pgPassword = "testpass"
)

type containerInfo struct {
	Host string
	Port nat.Port
}

type StoreSuite struct {
	suite.Suite
	containers []testcontainers.Container
	stores     map[string]kvstore.Store
	clock      *clock.MockClock
}

func TestStoreSuite(t *testing.T) {
	suite.Run(t, new(StoreSuite))
}

func (s *StoreSuite) SetupSuite() {
	t := s.T()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.clock = clock.NewMockClock(time.Now())
	s.stores = map[string]kvstore.Store{}

	redisC := s.start(testcontainers.ContainerRequest{
		Image:        "redis:7-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(60 * time.Second),
	})
	redisInfo, err := hostPort(redisC, "6379/tcp")
	require.NoError(t, err)

	rs, err := kvstore.NewRedisStore(context.Background(), kvstore.RedisOptions{
		Addr:      redisInfo.Host + ":" + redisInfo.Port.Port(),
		Namespace: "e2e",
	}, logger)
	require.NoError(t, err, "connect redis")
	s.stores["redis"] = rs

	dsn := func(host string, port nat.Port) string {
		return fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable", pgUser, pgPassword, host, port.Port())
	}
	pgC := s.start(testcontainers.ContainerRequest{
		Image:        "postgres:17",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     pgUser,
			"POSTGRES_PASSWORD": pgPassword,
			"POSTGRES_DB":       "postgres",
		},
		WaitingFor: wait.ForSQL("5432/tcp", "pgx", dsn).WithStartupTimeout(60 * time.Second),
	})
	pgInfo, err := hostPort(pgC, "5432/tcp")
	require.NoError(t, err)

	ps, err := kvstore.NewPostgresStore(context.Background(), dsn(pgInfo.Host, pgInfo.Port), "e2e", s.clock, logger)
	require.NoError(t, err, "connect postgres")
	require.NoError(t, ps.Migrate(context.Background()))
	s.stores["postgres"] = ps
}

func (s *StoreSuite) TearDownSuite() {
	for _, st := range s.stores {
		_ = st.Close()
	}
	for _, c := range s.containers {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := c.Terminate(ctx); err != nil {
			slog.Warn("failed to terminate container", "error", err.Error())
		}
		cancel()
	}
}

func (s *StoreSuite) start(req testcontainers.ContainerRequest) testcontainers.Container {
	ctx, cancel := context.WithTimeout(context.Background(), 180*time.Second)
	defer cancel()
	c, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	s.Require().NoError(err, "start %s", req.Image)
	s.containers = append(s.containers, c)
	return c
}

func hostPort(c testcontainers.Container, port string) (containerInfo, error) {
	ctx := context.Background()
	mapped, err := c.MappedPort(ctx, nat.Port(port))
	if err != nil {
		return containerInfo{}, err
	}
	host, err := c.Host(ctx)
	if err != nil {
		return containerInfo{}, err
	}
	return containerInfo{Host: host, Port: mapped}, nil
}

func (s *StoreSuite) TestRoundTrip() {
	for name, st := range s.stores {
		s.Run(name, func() {
			ctx := context.Background()
			key := "cleaning:progress:" + name

			_, err := st.Get(ctx, key)
			s.True(infra.IsKind(err, infra.KindNotFound))

			s.Require().NoError(st.Set(ctx, key, []byte(`"in-progress"`), time.Hour))
			s.Require().NoError(st.Set(ctx, key, []byte(`"idle"`), time.Hour))

			got, err := st.Get(ctx, key)
			s.Require().NoError(err)
			s.Equal(`"idle"`, string(got))

			s.Require().NoError(st.Delete(ctx, key))
			_, err = st.Get(ctx, key)
			s.True(infra.IsKind(err, infra.KindNotFound))
		})
	}
}

func (s *StoreSuite) TestPostgresExpiry() {
	st := s.stores["postgres"]
	ctx := context.Background()

	s.Require().NoError(st.Set(ctx, "module:nuki", []byte("true"), time.Minute))
	_, err := st.Get(ctx, "module:nuki")
	s.Require().NoError(err)

	s.clock.Add(2 * time.Minute)
	_, err = st.Get(ctx, "module:nuki")
	assert.True(s.T(), infra.IsKind(err, infra.KindNotFound))
}
