// services/ledger_service_test.go
package services

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/andrewcsmith09/MacrosAndMore-sub000/models"
	"github.com/andrewcsmith09/MacrosAndMore-sub000/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLedgerStore struct {
	mu           sync.Mutex
	user         models.User
	rejectSwap   bool
	savedTotals  int
	advanceCalls int
	streakCalls  int
	achievements map[GoalCategory]time.Time

	// Optional gates for the coalescing test: GetUser signals entered (if
	// set) and then blocks until gate closes.
	entered chan struct{}
	gate    chan struct{}
}

func newFakeStore(user models.User) *fakeLedgerStore {
	return &fakeLedgerStore{user: user, achievements: map[GoalCategory]time.Time{}}
}

func (f *fakeLedgerStore) GetUser(_ context.Context, _ uint) (*models.User, error) {
	if f.entered != nil {
		select {
		case f.entered <- struct{}{}:
		default:
		}
	}
	if f.gate != nil {
		<-f.gate
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	u := f.user
	return &u, nil
}

func (f *fakeLedgerStore) AdvanceDay(_ context.Context, _ uint, _ *time.Time, next time.Time, totalsJSON string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.advanceCalls++
	if f.rejectSwap {
		return false, nil
	}
	f.user.LastCheckedDate = &next
	f.user.LastTotals = totalsJSON
	return true, nil
}

func (f *fakeLedgerStore) SaveTotals(_ context.Context, _ uint, totalsJSON string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.user.LastTotals = totalsJSON
	f.savedTotals++
	return nil
}

func (f *fakeLedgerStore) UpdateStreak(_ context.Context, _ uint, streak int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.user.LoginStreak = streak
	f.streakCalls++
	return nil
}

func (f *fakeLedgerStore) RecordAchievement(_ context.Context, _ uint, category GoalCategory, metDate time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.achievements[category] = metDate
	return nil
}

type fakeNotifier struct {
	fired []GoalCategory
	dates []time.Time
}

func (n *fakeNotifier) NotifyGoalMet(_ uint, category GoalCategory, metDate time.Time) {
	n.fired = append(n.fired, category)
	n.dates = append(n.dates, metDate)
}

func newTestLedger(store *fakeLedgerStore, now time.Time) (*LedgerService, *fakeNotifier) {
	notifier := &fakeNotifier{}
	svc := NewLedgerService(store, NewMemoryFlagStore(), notifier)
	svc.now = func() time.Time { return now }
	return svc, notifier
}

// ledgerUser returns an account with a full goal profile and the given
// ledger state.
func ledgerUser(lastChecked *time.Time, streak int, lastTotals string) models.User {
	u := models.User{
		DailyCalorieGoal:   2000,
		DailyProteinGoal:   125,
		DailyCarbsGoal:     225,
		DailyFatGoal:       67,
		Water:              2000,
		TotalSugars:        50,
		AddedSugars:        25,
		TransFat:           2,
		SaturatedFat:       20,
		PolyunsaturatedFat: 22,
		MonounsaturatedFat: 33,
		Cholesterol:        200,
		Fiber:              30,
		Calcium:            1000,
		Iron:               8,
		Sodium:             2300,
		Potassium:          3400,
		VitaminA:           900,
		VitaminC:           90,
		VitaminD:           15,
		LoginStreak:        streak,
		LastCheckedDate:    lastChecked,
		LastTotals:         lastTotals,
	}
	u.ID = 1
	return u
}

// allMetTotals satisfies every band of the ledgerUser profile.
func allMetTotals() models.DailyTotals {
	return models.DailyTotals{
		Nutrients: models.Nutrients{
			Calories:           2000,
			Protein:            125,
			Carbs:              225,
			Fat:                67,
			TotalSugars:        50,
			AddedSugars:        10,
			TransFat:           0,
			SaturatedFat:       18,
			PolyunsaturatedFat: 22,
			MonounsaturatedFat: 33,
			Cholesterol:        150,
			Fiber:              40,
			Calcium:            1000,
			Iron:               8,
			Sodium:             2000,
			Potassium:          3400,
			VitaminA:           900,
			VitaminC:           90,
			VitaminD:           15,
		},
		Water: 68, // fl oz; 68 * 29.5735 ml clears the 95% band of 2000 ml
	}
}

// calorieOnlyTotals meets the calorie band and nothing else.
func calorieOnlyTotals() models.DailyTotals {
	return models.DailyTotals{Nutrients: models.Nutrients{Calories: 2000}}
}

func mustJSON(t *testing.T, totals models.DailyTotals) string {
	t.Helper()
	raw, err := json.Marshal(totals)
	require.NoError(t, err)
	return string(raw)
}

func TestFirstEvaluationSeedsLedger(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 30, 0, 0, time.Local)
	store := newFakeStore(ledgerUser(nil, 0, ""))
	svc, notifier := newTestLedger(store, now)

	check, err := svc.EvaluateDaily(context.Background(), 1, calorieOnlyTotals())
	require.NoError(t, err)

	assert.Equal(t, 1, check.LoginStreak)
	assert.False(t, check.NewDay)
	assert.Empty(t, check.AlertsFired)
	require.NotNil(t, store.user.LastCheckedDate)
	assert.True(t, store.user.LastCheckedDate.Equal(utils.DateOnly(now)))
	assert.NotEmpty(t, store.user.LastTotals)
	assert.Empty(t, notifier.fired)
}

func TestSameDayOnlyRefreshesSnapshot(t *testing.T) {
	now := time.Date(2026, 3, 10, 21, 0, 0, 0, time.Local)
	today := utils.DateOnly(now)
	store := newFakeStore(ledgerUser(&today, 4, mustJSON(t, calorieOnlyTotals())))
	svc, notifier := newTestLedger(store, now)

	check, err := svc.EvaluateDaily(context.Background(), 1, allMetTotals())
	require.NoError(t, err)

	assert.Equal(t, 4, check.LoginStreak)
	assert.False(t, check.NewDay)
	assert.Equal(t, 1, store.savedTotals)
	assert.True(t, store.user.LastCheckedDate.Equal(today))
	assert.Empty(t, store.achievements)
	assert.Empty(t, notifier.fired)
}

func TestDayBoundaryIncrementsStreak(t *testing.T) {
	now := time.Date(2026, 3, 11, 8, 0, 0, 0, time.Local)
	yesterday := utils.DateOnly(now).AddDate(0, 0, -1)
	store := newFakeStore(ledgerUser(&yesterday, 3, mustJSON(t, calorieOnlyTotals())))
	svc, notifier := newTestLedger(store, now)

	check, err := svc.EvaluateDaily(context.Background(), 1, models.DailyTotals{})
	require.NoError(t, err)

	assert.True(t, check.NewDay)
	assert.Equal(t, 4, check.LoginStreak)
	assert.Equal(t, 4, store.user.LoginStreak)
	assert.Equal(t, utils.FormatDate(yesterday), check.EvaluatedDate)

	// Only the calorie goal was met on the evaluated day.
	assert.Equal(t, []GoalCategory{CategoryCalorie}, check.AlertsFired)
	assert.Equal(t, []GoalCategory{CategoryCalorie}, notifier.fired)
	require.Len(t, notifier.dates, 1)
	assert.True(t, notifier.dates[0].Equal(yesterday))
	require.Contains(t, store.achievements, CategoryCalorie)
	assert.True(t, store.achievements[CategoryCalorie].Equal(yesterday))
	assert.NotContains(t, store.achievements, CategoryAllGoals)
}

func TestMissedDayResetsStreak(t *testing.T) {
	now := time.Date(2026, 3, 14, 8, 0, 0, 0, time.Local)
	lastChecked := utils.DateOnly(now).AddDate(0, 0, -3)
	store := newFakeStore(ledgerUser(&lastChecked, 7, mustJSON(t, calorieOnlyTotals())))
	svc, _ := newTestLedger(store, now)

	check, err := svc.EvaluateDaily(context.Background(), 1, models.DailyTotals{})
	require.NoError(t, err)

	assert.True(t, check.NewDay)
	assert.Equal(t, 1, check.LoginStreak)
	assert.Equal(t, 1, store.user.LoginStreak)
}

func TestAllGoalsAlertFiresAlone(t *testing.T) {
	now := time.Date(2026, 3, 11, 8, 0, 0, 0, time.Local)
	yesterday := utils.DateOnly(now).AddDate(0, 0, -1)
	store := newFakeStore(ledgerUser(&yesterday, 1, mustJSON(t, allMetTotals())))
	svc, notifier := newTestLedger(store, now)

	check, err := svc.EvaluateDaily(context.Background(), 1, models.DailyTotals{})
	require.NoError(t, err)

	// Every category is recorded as an achievement, but only the allGoals
	// alert is delivered.
	assert.Equal(t, []GoalCategory{CategoryAllGoals}, check.AlertsFired)
	assert.Equal(t, []GoalCategory{CategoryAllGoals}, notifier.fired)
	for _, category := range AllCategories {
		assert.Contains(t, store.achievements, category, string(category))
	}
}

func TestLostSwapAppliesNothing(t *testing.T) {
	now := time.Date(2026, 3, 11, 8, 0, 0, 0, time.Local)
	yesterday := utils.DateOnly(now).AddDate(0, 0, -1)
	store := newFakeStore(ledgerUser(&yesterday, 3, mustJSON(t, allMetTotals())))
	store.rejectSwap = true
	svc, notifier := newTestLedger(store, now)

	check, err := svc.EvaluateDaily(context.Background(), 1, models.DailyTotals{})
	require.NoError(t, err)

	assert.False(t, check.NewDay)
	assert.Equal(t, 3, check.LoginStreak)
	assert.Empty(t, store.achievements)
	assert.Empty(t, notifier.fired)
}

func TestBadSnapshotSkipsGoalEvaluation(t *testing.T) {
	now := time.Date(2026, 3, 11, 8, 0, 0, 0, time.Local)
	yesterday := utils.DateOnly(now).AddDate(0, 0, -1)

	for name, snapshot := range map[string]string{
		"empty":   "",
		"corrupt": "{not json",
	} {
		store := newFakeStore(ledgerUser(&yesterday, 2, snapshot))
		svc, notifier := newTestLedger(store, now)

		check, err := svc.EvaluateDaily(context.Background(), 1, models.DailyTotals{})
		require.NoError(t, err, name)

		assert.True(t, check.NewDay, name)
		assert.Equal(t, 3, check.LoginStreak, name)
		assert.Empty(t, store.achievements, name)
		assert.Empty(t, notifier.fired, name)
	}
}

func TestFireAlertsOncePerDay(t *testing.T) {
	now := time.Date(2026, 3, 11, 8, 0, 0, 0, time.Local)
	today := utils.DateOnly(now)
	yesterday := today.AddDate(0, 0, -1)
	store := newFakeStore(ledgerUser(nil, 1, ""))
	svc, notifier := newTestLedger(store, now)

	met := map[GoalCategory]bool{CategoryCalorie: true, CategoryWater: true}

	fired := svc.fireAlerts(context.Background(), 1, met, yesterday, today)
	assert.ElementsMatch(t, []GoalCategory{CategoryCalorie, CategoryWater}, fired)
	assert.Len(t, notifier.fired, 2)

	// A second pass on the same day is suppressed by the flags.
	fired = svc.fireAlerts(context.Background(), 1, met, yesterday, today)
	assert.Empty(t, fired)
	assert.Len(t, notifier.fired, 2)
}

// Concurrent triggers for one account share a single in-flight evaluation;
// the day advances exactly once no matter how many arrive together.
func TestConcurrentEvaluationsCoalesce(t *testing.T) {
	now := time.Date(2026, 3, 11, 8, 0, 0, 0, time.Local)
	yesterday := utils.DateOnly(now).AddDate(0, 0, -1)
	store := newFakeStore(ledgerUser(&yesterday, 3, mustJSON(t, calorieOnlyTotals())))
	store.entered = make(chan struct{}, 1)
	store.gate = make(chan struct{})
	svc, _ := newTestLedger(store, now)

	const callers = 5
	results := make(chan *DailyCheck, callers)
	errs := make(chan error, callers)
	run := func() {
		check, err := svc.EvaluateDaily(context.Background(), 1, models.DailyTotals{})
		results <- check
		errs <- err
	}

	go run()
	// Wait for the first evaluation to be inside the store, then pile the
	// rest on while it is in flight.
	<-store.entered
	var wg sync.WaitGroup
	for i := 1; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			run()
		}()
	}
	time.Sleep(50 * time.Millisecond)
	close(store.gate)
	wg.Wait()

	for i := 0; i < callers; i++ {
		require.NoError(t, <-errs)
		check := <-results
		assert.Equal(t, 4, check.LoginStreak)
	}
	assert.Equal(t, 1, store.advanceCalls)
	assert.Equal(t, 1, store.streakCalls)
	assert.Equal(t, 4, store.user.LoginStreak)
}

// A cancelled context abandons the evaluation before anything persists.
func TestCancelledContextWritesNothing(t *testing.T) {
	now := time.Date(2026, 3, 11, 8, 0, 0, 0, time.Local)
	yesterday := utils.DateOnly(now).AddDate(0, 0, -1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for name, user := range map[string]models.User{
		"day boundary": ledgerUser(&yesterday, 3, mustJSON(t, allMetTotals())),
		"first run":    ledgerUser(nil, 0, ""),
	} {
		store := newFakeStore(user)
		svc, notifier := newTestLedger(store, now)

		_, err := svc.EvaluateDaily(ctx, 1, models.DailyTotals{})
		assert.ErrorIs(t, err, context.Canceled, name)
		assert.Zero(t, store.advanceCalls, name)
		assert.Zero(t, store.streakCalls, name)
		assert.Zero(t, store.savedTotals, name)
		assert.Empty(t, store.achievements, name)
		assert.Empty(t, notifier.fired, name)
	}
}

// A lost seed swap means another evaluation initialized the ledger first;
// this one reports the streak without writing anything.
func TestLostSeedSwapSkipsStreakInit(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.Local)
	store := newFakeStore(ledgerUser(nil, 0, ""))
	store.rejectSwap = true
	svc, _ := newTestLedger(store, now)

	check, err := svc.EvaluateDaily(context.Background(), 1, calorieOnlyTotals())
	require.NoError(t, err)

	assert.Equal(t, 1, check.LoginStreak)
	assert.False(t, check.NewDay)
	assert.Zero(t, store.streakCalls)
}

func TestEvaluateGoalsBands(t *testing.T) {
	user := ledgerUser(nil, 1, "")

	met := evaluateGoals(allMetTotals(), &user)
	for _, category := range AllCategories {
		assert.True(t, met[category], string(category))
	}

	// Calorie band is 95% to 105% of the goal.
	for consumed, want := range map[float64]bool{
		1899: false,
		1900: true,
		2100: true,
		2101: false,
	} {
		totals := models.DailyTotals{Nutrients: models.Nutrients{Calories: consumed}}
		assert.Equal(t, want, evaluateGoals(totals, &user)[CategoryCalorie], "calories %v", consumed)
	}

	// Fiber tolerates up to double the goal.
	fiberTotals := models.DailyTotals{Nutrients: models.Nutrients{Fiber: 60}}
	assert.True(t, evaluateGoals(fiberTotals, &user)[CategoryFiber])
	fiberTotals.Fiber = 61
	assert.False(t, evaluateGoals(fiberTotals, &user)[CategoryFiber])

	// Limit nutrients have no lower bound; zero sodium still sweeps.
	zeroSodium := allMetTotals()
	zeroSodium.Sodium = 0
	assert.True(t, evaluateGoals(zeroSodium, &user)[CategoryAllGoals])

	// Water compares logged fl oz against the ml goal at 95%.
	waterTotals := models.DailyTotals{Water: 1901 / MlPerFluidOunce}
	assert.True(t, evaluateGoals(waterTotals, &user)[CategoryWater])
	waterTotals.Water = 1890 / MlPerFluidOunce
	assert.False(t, evaluateGoals(waterTotals, &user)[CategoryWater])
}
