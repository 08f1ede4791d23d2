package tracking_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"mwtrack/internal/api"
	"mwtrack/internal/domain"
	"mwtrack/internal/i18n"
	"mwtrack/internal/mockapi"
	"mwtrack/internal/services/auth"
	"mwtrack/internal/services/tracking"
	"mwtrack/internal/store"
	"mwtrack/internal/testutil"
)

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Notify(ctx context.Context, n domain.Notification) error {
	return m.Called(ctx, n).Error(0)
}

type fixedLanguage domain.Language

func (l fixedLanguage) Language() domain.Language { return domain.Language(l) }

func newPoller(t *testing.T, env *testutil.Env, n domain.Notifier, lang domain.Language) *tracking.Poller {
	t.Helper()
	return tracking.NewPoller(
		env.Client,
		auth.New(env.Client, env.Sessions, env.KV),
		env.KV,
		n,
		fixedLanguage(lang),
	)
}

func TestPoll_NoUser(t *testing.T) {
	env := testutil.NewEnv(t)
	notifier := new(MockNotifier)

	res, err := newPoller(t, env, notifier, domain.Spanish).Poll(t.Context())
	require.NoError(t, err)
	assert.Equal(t, tracking.ResultNoData, res)
	assert.Zero(t, env.Mock.Calls(api.EndpointMonitor))
	notifier.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything)
}

func TestPoll_AnnouncesNewLogsOnce(t *testing.T) {
	env := testutil.NewEnv(t)
	env.SignIn(t)

	notifier := new(MockNotifier)
	notifier.On("Notify", mock.Anything, domain.Notification{
		Title:       "Actualización de Pedido",
		Body:        "El pedido 4100 ha recibido una actualización.",
		OrderNumber: "4100",
	}).Return(nil).Once()
	notifier.On("Notify", mock.Anything, domain.Notification{
		Title:       "Actualización de Pedido",
		Body:        "El pedido 4101 ha recibido una actualización.",
		OrderNumber: "4101",
	}).Return(nil).Once()

	p := newPoller(t, env, notifier, domain.Spanish)
	res, err := p.Poll(t.Context())
	require.NoError(t, err)
	assert.Equal(t, tracking.ResultNewData, res)
	notifier.AssertExpectations(t)

	last, err := p.LastSeen()
	require.NoError(t, err)
	assert.Equal(t, 2, last)

	res, err = p.Poll(t.Context())
	require.NoError(t, err)
	assert.Equal(t, tracking.ResultNoData, res)
	notifier.AssertNumberOfCalls(t, "Notify", 2)
}

func TestPoll_TranslatesAndResumes(t *testing.T) {
	env := testutil.NewEnv(t)
	env.SignIn(t)
	require.NoError(t, env.KV.Set(store.KeyLastTrackedID, "2"))

	entry := env.Mock.AppendTrackingLog(mockapi.DemoKeyUser, "4101", "customs_cleared")

	notifier := new(MockNotifier)
	notifier.On("Notify", mock.Anything, domain.Notification{
		Title:       "Order Update",
		Body:        "Order 4101 has received an update.",
		OrderNumber: "4101",
	}).Return(nil).Once()

	p := newPoller(t, env, notifier, i18n.English)
	res, err := p.Poll(t.Context())
	require.NoError(t, err)
	assert.Equal(t, tracking.ResultNewData, res)
	notifier.AssertExpectations(t)

	last, err := p.LastSeen()
	require.NoError(t, err)
	assert.Equal(t, entry.ID, last)
}

func TestPoll_NotifyFailureKeepsEarlierProgress(t *testing.T) {
	env := testutil.NewEnv(t)
	env.SignIn(t)

	notifier := new(MockNotifier)
	notifier.On("Notify", mock.Anything, mock.MatchedBy(func(n domain.Notification) bool {
		return n.OrderNumber == "4100"
	})).Return(nil)
	notifier.On("Notify", mock.Anything, mock.MatchedBy(func(n domain.Notification) bool {
		return n.OrderNumber == "4101"
	})).Return(errors.New("broker down"))

	p := newPoller(t, env, notifier, domain.Spanish)
	res, err := p.Poll(t.Context())
	require.Error(t, err)
	assert.Equal(t, tracking.ResultFailed, res)

	last, err := p.LastSeen()
	require.NoError(t, err)
	assert.Equal(t, 1, last)
}

func TestPoll_BackendFailures(t *testing.T) {
	env := testutil.NewEnv(t)
	env.SignIn(t)
	notifier := new(MockNotifier)
	p := newPoller(t, env, notifier, domain.Spanish)

	env.Mock.SetDown(true)
	res, err := p.Poll(t.Context())
	require.Error(t, err)
	assert.Equal(t, tracking.ResultFailed, res)
	env.Mock.SetDown(false)

	// an unknown keyuser is rejected by the backend: nothing to report
	require.NoError(t, env.Sessions.SaveUser(domain.User{ID: "9", KeyUser: "stale"}))
	res, err = p.Poll(t.Context())
	require.NoError(t, err)
	assert.Equal(t, tracking.ResultNoData, res)
	notifier.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything)
}

func TestPoll_MalformedLastSeen(t *testing.T) {
	env := testutil.NewEnv(t)
	env.SignIn(t)
	require.NoError(t, env.KV.Set(store.KeyLastTrackedID, "abc"))

	notifier := new(MockNotifier)
	notifier.On("Notify", mock.Anything, mock.Anything).Return(nil)

	res, err := newPoller(t, env, notifier, domain.Spanish).Poll(t.Context())
	require.NoError(t, err)
	assert.Equal(t, tracking.ResultNewData, res)
	notifier.AssertNumberOfCalls(t, "Notify", 2)
}

func TestRun_StopsOnCancel(t *testing.T) {
	env := testutil.NewEnv(t)
	env.SignIn(t)
	notifier := new(MockNotifier)
	notifier.On("Notify", mock.Anything, mock.Anything).Return(nil)

	p := newPoller(t, env, notifier, domain.Spanish)
	ctx, cancel := context.WithCancel(t.Context())
	done := make(chan error, 1)
	go func() { done <- p.Run(ctx, time.Hour) }()

	require.Eventually(t, func() bool {
		return env.Mock.Calls(api.EndpointMonitor) == 1
	}, 5*time.Second, 10*time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.ErrorIs(t, err, context.Canceled)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestResultString(t *testing.T) {
	assert.Equal(t, "new-data", tracking.ResultNewData.String())
	assert.Equal(t, "no-data", tracking.ResultNoData.String())
	assert.Equal(t, "failed", tracking.ResultFailed.String())
}
