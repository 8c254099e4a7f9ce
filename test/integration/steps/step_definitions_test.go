package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/studysync/backend/internal/application/usecase/attendance"
	"github.com/studysync/backend/internal/application/usecase/auth"
	"github.com/studysync/backend/internal/application/usecase/budget"
	"github.com/studysync/backend/internal/application/usecase/group"
	"github.com/studysync/backend/internal/application/usecase/planner"
	"github.com/studysync/backend/internal/application/usecase/schedule"
	"github.com/studysync/backend/internal/domain/entity"
	"github.com/studysync/backend/internal/infra/server/router"
	"github.com/studysync/backend/internal/integration/adapters"
	"github.com/studysync/backend/internal/integration/email"
	"github.com/studysync/backend/internal/integration/entrypoint/controller"
	"github.com/studysync/backend/internal/integration/entrypoint/middleware"
	"github.com/studysync/backend/internal/integration/persistence"
	"github.com/studysync/backend/internal/integration/persistence/model"
	"github.com/studysync/backend/test/integration/mock"
)

const testJWTSecret = "test-jwt-secret-key-for-testing-purposes"

// frozenTestTime pins the server clock for time-dependent endpoints.
// Monday, 2025-03-10 08:00 UTC; feature files build dates around it.
var frozenTestTime = time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)

var tags string

func init() {
	flag.StringVar(&tags, "scenarios", "", "tags to run")
}

func TestFeatures(t *testing.T) {
	flag.Parse()

	suite := godog.TestSuite{
		ScenarioInitializer: func(s *godog.ScenarioContext) {
			InitializeScenario(s)
		},
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"../features"},
			Tags:     tags,
			Strict:   true,
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}

type testContext struct {
	uri           string
	headers       map[string]string
	client        *http.Client
	response      *response
	db            *mock.Db
	serverPort    int
	accessToken   string
	refreshToken  string
	resetToken    string
	expiredToken  string
	currentUserID uuid.UUID
	sessionID     uuid.UUID
	transactionID uuid.UUID
	groupID       uuid.UUID
	planID        uuid.UUID
	lastID        uuid.UUID
}

type response struct {
	status int
	body   any
}

var serverInit sync.Once
var testDB *mock.Db
var testPlanner *mock.Planner
var testEmail *email.MockEmailSender
var testServerPort int
var portInit sync.Once

func initializePort() {
	portInit.Do(func() {
		testServerPort = findAvailablePort()
		_ = os.Setenv("SERVER_PORT", strconv.Itoa(testServerPort))
		_ = os.Setenv("ENV", "test")
	})
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	initializePort()

	test := &testContext{
		uri:    fmt.Sprintf("http://localhost:%d", testServerPort),
		client: &http.Client{Timeout: 10 * time.Second},
		db: mock.NewDb("studysync", map[string]any{
			"users":                 &model.UserModel{},
			"refresh_tokens":        &model.RefreshTokenModel{},
			"password_reset_tokens": &model.PasswordResetTokenModel{},
			"class_sessions":        &model.ClassSessionModel{},
			"transactions":          &model.TransactionModel{},
			"budget_limits":         &model.BudgetLimitModel{},
			"study_groups":          &model.StudyGroupModel{},
			"group_members":         &model.GroupMemberModel{},
			"study_plans":           &model.StudyPlanModel{},
		}),
		serverPort: testServerPort,
	}

	testDB = test.db
	if testPlanner == nil {
		testPlanner = mock.NewPlanner()
	}
	if testEmail == nil {
		testEmail = email.NewMockEmailSender()
	}

	ctx.Before(func(c context.Context, sc *godog.Scenario) (context.Context, error) {
		test.before()
		return c, nil
	})

	// Background steps
	ctx.Given(`^the API server is running$`, test.theAPIServerIsRunning)

	// User setup steps
	ctx.Given(`^a user exists with email "([^"]*)"$`, test.aUserExistsWithEmail)
	ctx.Given(`^a user exists with email "([^"]*)" and password "([^"]*)"$`, test.aUserExistsWithEmailAndPassword)
	ctx.Given(`^the user is logged in with valid tokens$`, test.theUserIsLoggedInWithValidTokens)
	ctx.Given(`^I am logged in as "([^"]*)"$`, test.iAmLoggedInAs)
	ctx.Given(`^the user "([^"]*)" exists$`, test.theUserExists)
	ctx.Given(`^a password reset token exists for "([^"]*)"$`, test.aPasswordResetTokenExistsFor)
	ctx.Given(`^an expired password reset token exists$`, test.anExpiredPasswordResetTokenExists)

	// Schedule setup steps
	ctx.Given(`^a weekly class "([^"]*)" on "([^"]*)" from "([^"]*)" to "([^"]*)" exists$`, test.aWeeklyClassExists)
	ctx.Given(`^a class "([^"]*)" on date "([^"]*)" from "([^"]*)" to "([^"]*)" marked "([^"]*)" exists$`, test.aDatedClassExists)

	// Budget setup steps
	ctx.Given(`^a transaction of "([^"]*)" in category "([^"]*)" with type "([^"]*)" on "([^"]*)" exists$`, test.aTransactionExists)
	ctx.Given(`^a budget limit of "([^"]*)" for category "([^"]*)" exists$`, test.aBudgetLimitExists)

	// Group setup steps
	ctx.Given(`^a study group "([^"]*)" owned by "([^"]*)" exists$`, test.aStudyGroupOwnedByExists)

	// Planner setup steps
	ctx.Given(`^a saved study plan titled "([^"]*)" exists$`, test.aSavedStudyPlanExists)
	ctx.Given(`^the AI planner will return a plan titled "([^"]*)"$`, test.theAIPlannerWillReturnAPlanTitled)
	ctx.Given(`^the AI planner will fail with "([^"]*)"$`, test.theAIPlannerWillFailWith)
	ctx.Given(`^the AI planner is unavailable$`, test.theAIPlannerIsUnavailable)

	// Header steps
	ctx.Given(`^the header is empty$`, test.theHeaderIsEmpty)
	ctx.Given(`^the header contains the key "([^"]*)" with "([^"]*)"$`, test.theHeaderContainsTheKeyWith)

	// Request steps
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)

	// Response assertion steps
	ctx.Then(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Then(`^the response should be JSON$`, test.theResponseShouldBeJSON)
	ctx.Then(`^the response should contain "([^"]*)"$`, test.theResponseShouldContain)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)
	ctx.Then(`^the response field "([^"]*)" should have (\d+) items?$`, test.theResponseFieldShouldHaveItems)

	// Email assertion steps
	ctx.Then(`^a password reset email should have been sent to "([^"]*)"$`, test.aPasswordResetEmailShouldHaveBeenSentTo)
	ctx.Then(`^no password reset email should have been sent$`, test.noPasswordResetEmailShouldHaveBeenSent)

	// Database assertion steps
	ctx.Then(`^the db should contain (\d+) objects in the "([^"]*)" table$`, test.theDbShouldContainObjectsInTheTable)
	ctx.Then(`^the db should contain (\d+) objects in "([^"]*)" with the values$`, test.theDbShouldContainObjectsInWithTheValues)
}

func findAvailablePort() int {
	listener, err := net.Listen("tcp", ":0")
	if err != nil {
		panic(err)
	}
	defer listener.Close()
	return listener.Addr().(*net.TCPAddr).Port
}

func (t *testContext) before() {
	t.headers = make(map[string]string)
	t.accessToken = ""
	t.refreshToken = ""
	t.resetToken = ""
	t.expiredToken = ""
	t.currentUserID = uuid.Nil
	t.sessionID = uuid.Nil
	t.transactionID = uuid.Nil
	t.groupID = uuid.Nil
	t.planID = uuid.Nil
	t.lastID = uuid.Nil

	if t.db != nil {
		_ = t.db.ClearDB()
	}
	_ = mock.ClearRedis(mock.NewRedis())
	if testPlanner != nil {
		testPlanner.Reset()
	}
	if testEmail != nil {
		testEmail.Reset()
	}
}

func (t *testContext) startServer() {
	serverInit.Do(func() {
		go func() {
			gin.SetMode(gin.TestMode)

			// Create repositories
			userRepo := persistence.NewUserRepository(testDB.DbConn)
			tokenRepo := persistence.NewTokenRepository(testDB.DbConn)
			sessionRepo := persistence.NewSessionRepository(testDB.DbConn)
			transactionRepo := persistence.NewTransactionRepository(testDB.DbConn)
			limitRepo := persistence.NewBudgetLimitRepository(testDB.DbConn)
			groupRepo := persistence.NewGroupRepository(testDB.DbConn)
			planRepo := persistence.NewPlanRepository(testDB.DbConn)

			// Create adapters/services
			passwordService := adapters.NewPasswordService()
			tokenService := adapters.NewTokenService(testJWTSecret, tokenRepo)
			resetTokenService := adapters.NewPasswordResetTokenService(tokenRepo)
			overviewCache := adapters.NewRedisOverviewCache(mock.NewRedis(), 5*time.Minute)

			// Create auth use cases
			registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService)
			loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
			refreshTokenUseCase := auth.NewRefreshTokenUseCase(tokenService)
			logoutUseCase := auth.NewLogoutUserUseCase(tokenService)
			forgotPasswordUseCase := auth.NewForgotPasswordUseCase(userRepo, resetTokenService, testEmail, "http://localhost:5173")
			resetPasswordUseCase := auth.NewResetPasswordUseCase(userRepo, passwordService, resetTokenService)

			// Create schedule use cases, pinned to the frozen clock
			createSessionUseCase := schedule.NewCreateSessionUseCase(sessionRepo)
			listScheduleUseCase := schedule.NewListScheduleUseCase(sessionRepo)
			updateSessionUseCase := schedule.NewUpdateSessionUseCase(sessionRepo)
			deleteSessionUseCase := schedule.NewDeleteSessionUseCase(sessionRepo)
			markAttendanceUseCase := schedule.NewMarkAttendanceUseCase(sessionRepo)
			weeklyStatsUseCase := schedule.NewGetWeeklyStatsUseCase(sessionRepo).
				WithClock(func() time.Time { return frozenTestTime })

			// Create attendance use cases
			getCalendarUseCase := attendance.NewGetCalendarUseCase(sessionRepo).
				WithClock(func() time.Time { return frozenTestTime })
			getSubjectStatsUseCase := attendance.NewGetSubjectStatsUseCase(sessionRepo)
			listRecordsUseCase := attendance.NewListRecordsUseCase(sessionRepo)

			// Create budget use cases
			createTransactionUseCase := budget.NewCreateTransactionUseCase(transactionRepo, overviewCache)
			listTransactionsUseCase := budget.NewListTransactionsUseCase(transactionRepo)
			deleteTransactionUseCase := budget.NewDeleteTransactionUseCase(transactionRepo, overviewCache)
			setLimitUseCase := budget.NewSetLimitUseCase(limitRepo, overviewCache)
			listLimitsUseCase := budget.NewListLimitsUseCase(limitRepo)
			deleteLimitUseCase := budget.NewDeleteLimitUseCase(limitRepo, overviewCache)
			getOverviewUseCase := budget.NewGetOverviewUseCase(transactionRepo, limitRepo, overviewCache)

			// Create planner use cases backed by the controllable mock
			generatePlanUseCase := planner.NewGeneratePlanUseCase(testPlanner, planRepo)
			listPlansUseCase := planner.NewListPlansUseCase(planRepo)
			deletePlanUseCase := planner.NewDeletePlanUseCase(planRepo)

			// Create study group use cases
			createGroupUseCase := group.NewCreateGroupUseCase(groupRepo)
			listGroupsUseCase := group.NewListGroupsUseCase(groupRepo)
			joinGroupUseCase := group.NewJoinGroupUseCase(groupRepo)
			leaveGroupUseCase := group.NewLeaveGroupUseCase(groupRepo)

			// Create controllers
			healthController := controller.NewHealthController(func() bool {
				return testDB != nil && testDB.DbConn != nil
			})

			authController := controller.NewAuthController(
				registerUseCase,
				loginUseCase,
				refreshTokenUseCase,
				logoutUseCase,
				forgotPasswordUseCase,
				resetPasswordUseCase,
			)

			scheduleController := controller.NewScheduleController(
				createSessionUseCase,
				listScheduleUseCase,
				updateSessionUseCase,
				deleteSessionUseCase,
				markAttendanceUseCase,
				weeklyStatsUseCase,
			)

			attendanceController := controller.NewAttendanceController(
				getCalendarUseCase,
				getSubjectStatsUseCase,
				listRecordsUseCase,
			)

			budgetController := controller.NewBudgetController(
				createTransactionUseCase,
				listTransactionsUseCase,
				deleteTransactionUseCase,
				setLimitUseCase,
				listLimitsUseCase,
				deleteLimitUseCase,
				getOverviewUseCase,
			)

			plannerController := controller.NewPlannerController(
				generatePlanUseCase,
				listPlansUseCase,
				deletePlanUseCase,
			)

			groupController := controller.NewGroupController(
				createGroupUseCase,
				listGroupsUseCase,
				joinGroupUseCase,
				leaveGroupUseCase,
			)

			// Create middleware
			loginRateLimiter := middleware.NewRateLimiter()
			authMiddleware := middleware.NewAuthMiddleware(tokenService)

			r := router.NewRouter(
				healthController,
				authController,
				scheduleController,
				attendanceController,
				budgetController,
				plannerController,
				groupController,
				loginRateLimiter,
				authMiddleware,
			)
			engine := r.Setup("test")

			addr := fmt.Sprintf(":%d", testServerPort)
			server := &http.Server{
				Addr:    addr,
				Handler: engine,
			}

			_ = server.ListenAndServe()
		}()
	})

	// Wait for server to be ready
	for i := 0; i < 50; i++ {
		resp, err := http.Get(t.uri + "/health")
		if err == nil && resp.StatusCode == http.StatusOK {
			resp.Body.Close()
			return
		}
		time.Sleep(100 * time.Millisecond)
	}
}

func (t *testContext) theAPIServerIsRunning() error {
	t.startServer()
	return nil
}

func (t *testContext) aUserExistsWithEmail(email string) error {
	return t.createUser(email, "DefaultPass123!", "Test Student")
}

func (t *testContext) aUserExistsWithEmailAndPassword(email, password string) error {
	return t.createUser(email, password, "Test Student")
}

func (t *testContext) createUser(email, password, name string) error {
	userID := uuid.New()
	t.currentUserID = userID

	user := &model.UserModel{
		ID:                 userID,
		Email:              email,
		Name:               name,
		PasswordHash:       hashPassword(password),
		Institution:        "Test University",
		Program:            "Computer Science",
		EmailNotifications: true,
		ClassReminders:     true,
		BudgetAlerts:       true,
		TermsAcceptedAt:    time.Now(),
		CreatedAt:          time.Now(),
		UpdatedAt:          time.Now(),
	}

	result := t.db.DbConn.Create(user)
	return result.Error
}

func hashPassword(password string) string {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		panic(fmt.Sprintf("failed to hash password: %v", err))
	}
	return string(hashedBytes)
}

func (t *testContext) theUserIsLoggedInWithValidTokens() error {
	return t.issueTokensFor(t.currentUserID, "test@example.com")
}

func (t *testContext) issueTokensFor(userID uuid.UUID, email string) error {
	now := time.Now().UTC()

	accessClaims := jwt.MapClaims{
		"user_id":    userID.String(),
		"email":      email,
		"token_type": "access",
		"exp":        jwt.NewNumericDate(now.Add(15 * time.Minute)),
		"iat":        jwt.NewNumericDate(now),
		"nbf":        jwt.NewNumericDate(now),
		"iss":        "studysync",
		"sub":        userID.String(),
	}
	accessToken := jwt.NewWithClaims(jwt.SigningMethodHS256, accessClaims)
	accessTokenString, err := accessToken.SignedString([]byte(testJWTSecret))
	if err != nil {
		return fmt.Errorf("failed to generate access token: %w", err)
	}
	t.accessToken = accessTokenString

	refreshClaims := jwt.MapClaims{
		"user_id":    userID.String(),
		"email":      email,
		"token_type": "refresh",
		"exp":        jwt.NewNumericDate(now.Add(7 * 24 * time.Hour)),
		"iat":        jwt.NewNumericDate(now),
		"nbf":        jwt.NewNumericDate(now),
		"iss":        "studysync",
		"sub":        userID.String(),
	}
	refreshToken := jwt.NewWithClaims(jwt.SigningMethodHS256, refreshClaims)
	refreshTokenString, err := refreshToken.SignedString([]byte(testJWTSecret))
	if err != nil {
		return fmt.Errorf("failed to generate refresh token: %w", err)
	}
	t.refreshToken = refreshTokenString

	refreshTokenModel := &model.RefreshTokenModel{
		ID:          uuid.New(),
		Token:       t.refreshToken,
		UserID:      userID,
		Invalidated: false,
		ExpiresAt:   now.Add(7 * 24 * time.Hour),
		CreatedAt:   now,
	}

	result := t.db.DbConn.Create(refreshTokenModel)
	return result.Error
}

// theUserExists creates a user with the given email if they don't already exist.
func (t *testContext) theUserExists(email string) error {
	var userModel model.UserModel
	if err := t.db.DbConn.Where("email = ?", email).First(&userModel).Error; err == nil {
		return nil
	}

	userID := uuid.New()
	user := &model.UserModel{
		ID:                 userID,
		Email:              email,
		Name:               "Test Student " + email,
		PasswordHash:       hashPassword("SecurePass123!"),
		EmailNotifications: true,
		ClassReminders:     true,
		BudgetAlerts:       true,
		TermsAcceptedAt:    time.Now(),
		CreatedAt:          time.Now(),
		UpdatedAt:          time.Now(),
	}

	result := t.db.DbConn.Create(user)
	return result.Error
}

// iAmLoggedInAs switches the current logged in user to the specified email.
func (t *testContext) iAmLoggedInAs(email string) error {
	if err := t.theUserExists(email); err != nil {
		return err
	}

	var userModel model.UserModel
	if err := t.db.DbConn.Where("email = ?", email).First(&userModel).Error; err != nil {
		return fmt.Errorf("user not found: %w", err)
	}

	t.currentUserID = userModel.ID
	return t.issueTokensFor(userModel.ID, email)
}

func (t *testContext) aPasswordResetTokenExistsFor(email string) error {
	t.resetToken = fmt.Sprintf("test-reset-token-%s", uuid.New().String())

	var user model.UserModel
	if err := t.db.DbConn.Where("email = ?", email).First(&user).Error; err != nil {
		return fmt.Errorf("user not found: %w", err)
	}

	resetTokenModel := &model.PasswordResetTokenModel{
		ID:        uuid.New(),
		Token:     t.resetToken,
		UserID:    user.ID,
		Email:     email,
		Used:      false,
		ExpiresAt: time.Now().Add(1 * time.Hour),
		CreatedAt: time.Now(),
	}

	result := t.db.DbConn.Create(resetTokenModel)
	return result.Error
}

func (t *testContext) anExpiredPasswordResetTokenExists() error {
	t.expiredToken = fmt.Sprintf("expired-reset-token-%s", uuid.New().String())

	resetTokenModel := &model.PasswordResetTokenModel{
		ID:        uuid.New(),
		Token:     t.expiredToken,
		UserID:    uuid.New(),
		Email:     "expired@example.com",
		Used:      false,
		ExpiresAt: time.Now().Add(-1 * time.Hour),
		CreatedAt: time.Now().Add(-2 * time.Hour),
	}

	result := t.db.DbConn.Create(resetTokenModel)
	return result.Error
}

// aWeeklyClassExists creates a recurring class session for the current user.
func (t *testContext) aWeeklyClassExists(subject, weekday, startTime, endTime string) error {
	day, err := entity.ParseWeekday(weekday)
	if err != nil {
		return err
	}

	sessionID := uuid.New()
	t.sessionID = sessionID

	now := time.Now().UTC()
	sessionModel := &model.ClassSessionModel{
		ID:         sessionID,
		UserID:     t.currentUserID,
		Subject:    subject,
		Room:       "B-204",
		DayOfWeek:  int(day),
		StartTime:  startTime,
		EndTime:    endTime,
		Attendance: "pending",
		Color:      "#6366F1",
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	result := t.db.DbConn.Create(sessionModel)
	return result.Error
}

// aDatedClassExists creates a date-specific session with a given attendance mark.
func (t *testContext) aDatedClassExists(subject, dateStr, startTime, endTime, status string) error {
	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", dateStr, err)
	}

	sessionID := uuid.New()
	t.sessionID = sessionID

	now := time.Now().UTC()
	sessionModel := &model.ClassSessionModel{
		ID:         sessionID,
		UserID:     t.currentUserID,
		Subject:    subject,
		DayOfWeek:  int(date.Weekday()),
		Date:       &date,
		StartTime:  startTime,
		EndTime:    endTime,
		Attendance: status,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	result := t.db.DbConn.Create(sessionModel)
	return result.Error
}

func (t *testContext) aTransactionExists(amount, category, txType, dateStr string) error {
	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", dateStr, err)
	}

	value, err := decimal.NewFromString(amount)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", amount, err)
	}

	transactionID := uuid.New()
	t.transactionID = transactionID

	now := time.Now().UTC()
	transactionModel := &model.TransactionModel{
		ID:        transactionID,
		UserID:    t.currentUserID,
		Date:      date,
		Category:  category,
		Amount:    value,
		Type:      txType,
		CreatedAt: now,
		UpdatedAt: now,
	}

	result := t.db.DbConn.Create(transactionModel)
	return result.Error
}

func (t *testContext) aBudgetLimitExists(limit, category string) error {
	value, err := decimal.NewFromString(limit)
	if err != nil {
		return fmt.Errorf("invalid limit %q: %w", limit, err)
	}

	now := time.Now().UTC()
	limitModel := &model.BudgetLimitModel{
		ID:        uuid.New(),
		UserID:    t.currentUserID,
		Category:  category,
		Limit:     value,
		Period:    "monthly",
		CreatedAt: now,
		UpdatedAt: now,
	}

	result := t.db.DbConn.Create(limitModel)
	return result.Error
}

// aStudyGroupOwnedByExists creates a group with the owner as sole member.
func (t *testContext) aStudyGroupOwnedByExists(name, ownerEmail string) error {
	if err := t.theUserExists(ownerEmail); err != nil {
		return err
	}

	var owner model.UserModel
	if err := t.db.DbConn.Where("email = ?", ownerEmail).First(&owner).Error; err != nil {
		return fmt.Errorf("owner not found: %w", err)
	}

	groupID := uuid.New()
	t.groupID = groupID

	now := time.Now().UTC()
	groupModel := &model.StudyGroupModel{
		ID:        groupID,
		OwnerID:   owner.ID,
		Name:      name,
		Subject:   "General",
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := t.db.DbConn.Create(groupModel).Error; err != nil {
		return err
	}

	memberModel := &model.GroupMemberModel{
		GroupID:  groupID,
		UserID:   owner.ID,
		JoinedAt: now,
	}
	return t.db.DbConn.Create(memberModel).Error
}

func (t *testContext) aSavedStudyPlanExists(title string) error {
	planID := uuid.New()
	t.planID = planID

	now := time.Now().UTC()
	planModel := &model.StudyPlanModel{
		ID:        planID,
		UserID:    t.currentUserID,
		Title:     title,
		Focus:     "Algorithms, Databases",
		Content:   "## Day 1\nWork through past exam papers.",
		CreatedAt: now,
		UpdatedAt: now,
	}

	result := t.db.DbConn.Create(planModel)
	return result.Error
}

func (t *testContext) theAIPlannerWillReturnAPlanTitled(title string) error {
	testPlanner.SetResult(title, "## Day 1\nReview lecture notes and solve practice problems.")
	return nil
}

func (t *testContext) theAIPlannerWillFailWith(message string) error {
	testPlanner.SetError(message)
	return nil
}

func (t *testContext) theAIPlannerIsUnavailable() error {
	testPlanner.SetUnavailable()
	return nil
}

func (t *testContext) theHeaderIsEmpty() error {
	t.headers = make(map[string]string)
	t.accessToken = ""
	return nil
}

func (t *testContext) theHeaderContainsTheKeyWith(key, value string) error {
	t.headers[key] = value
	return nil
}

func (t *testContext) iSendARequestTo(method, path string) error {
	path = t.replaceTokenPlaceholders(path)
	return t.executeRequest(method, path, nil)
}

func (t *testContext) iSendARequestToWithBody(method, path string, body *godog.DocString) error {
	path = t.replaceTokenPlaceholders(path)

	var payload []byte
	if body != nil && body.Content != "" {
		content := t.replaceTokenPlaceholders(body.Content)
		payload = []byte(content)
	}
	return t.executeRequest(method, path, payload)
}

func (t *testContext) replaceTokenPlaceholders(content string) string {
	content = strings.ReplaceAll(content, "{{refresh_token}}", t.refreshToken)
	content = strings.ReplaceAll(content, "{{access_token}}", t.accessToken)
	content = strings.ReplaceAll(content, "{{reset_token}}", t.resetToken)
	content = strings.ReplaceAll(content, "{{expired_reset_token}}", t.expiredToken)
	content = strings.ReplaceAll(content, "{{session_id}}", t.sessionID.String())
	content = strings.ReplaceAll(content, "{{transaction_id}}", t.transactionID.String())
	content = strings.ReplaceAll(content, "{{group_id}}", t.groupID.String())
	content = strings.ReplaceAll(content, "{{plan_id}}", t.planID.String())
	content = strings.ReplaceAll(content, "{{last_id}}", t.lastID.String())
	return content
}

func (t *testContext) executeRequest(method, path string, payload []byte) error {
	var req *http.Request
	var err error

	url := t.uri + path

	if payload != nil {
		req, err = http.NewRequest(method, url, bytes.NewReader(payload))
	} else {
		req, err = http.NewRequest(method, url, nil)
	}
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")

	if t.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+t.accessToken)
	}

	for key, value := range t.headers {
		req.Header.Set(key, value)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	t.response = &response{
		status: resp.StatusCode,
	}

	var responseBody map[string]any
	if err := json.Unmarshal(bodyBytes, &responseBody); err != nil {
		t.response.body = string(bodyBytes)
	} else {
		t.response.body = responseBody

		// Capture the created resource ID for follow-up requests
		if idStr, ok := responseBody["id"].(string); ok {
			if id, err := uuid.Parse(idStr); err == nil {
				t.lastID = id
			}
		}
	}

	return nil
}

func (t *testContext) theResponseStatusShouldBe(expectedStatus int) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if t.response.status != expectedStatus {
		return fmt.Errorf("expected status %d, got %d (body: %v)", expectedStatus, t.response.status, t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldBeJSON() error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if _, ok := t.response.body.(map[string]any); !ok {
		return fmt.Errorf("response is not JSON: %v", t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldContain(field string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	body, ok := t.response.body.(map[string]any)
	if !ok {
		return fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}

	if _, exists := body[field]; !exists {
		return fmt.Errorf("response does not contain field '%s': %v", field, body)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBe(field, expectedValue string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	body, ok := t.response.body.(map[string]any)
	if !ok {
		return fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}

	value := getFieldValue(body, field)
	if value == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, body)
	}

	actualValue := fmt.Sprintf("%v", value)
	if actualValue != expectedValue {
		return fmt.Errorf("field '%s' expected '%s', got '%s'", field, expectedValue, actualValue)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldExist(field string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	body, ok := t.response.body.(map[string]any)
	if !ok {
		return fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}

	value := getFieldValue(body, field)
	if value == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, body)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldHaveItems(field string, count int) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	body, ok := t.response.body.(map[string]any)
	if !ok {
		return fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}

	value := getFieldValue(body, field)
	if value == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, body)
	}
	items, ok := value.([]any)
	if !ok {
		return fmt.Errorf("field '%s' is not a list: %v", field, value)
	}
	if len(items) != count {
		return fmt.Errorf("field '%s' has %d items, want %d", field, len(items), count)
	}
	return nil
}

func (t *testContext) aPasswordResetEmailShouldHaveBeenSentTo(address string) error {
	for _, sent := range testEmail.SentEmails {
		if sent.To == address {
			return nil
		}
	}
	return fmt.Errorf("no password reset email sent to %q (sent: %d)", address, len(testEmail.SentEmails))
}

func (t *testContext) noPasswordResetEmailShouldHaveBeenSent() error {
	if len(testEmail.SentEmails) != 0 {
		return fmt.Errorf("expected no emails, got %d", len(testEmail.SentEmails))
	}
	return nil
}

func (t *testContext) theDbShouldContainObjectsInTheTable(quantity int, table string) error {
	if entity, ok := t.db.GetModel(table); ok {
		entityType := reflect.TypeOf(entity).Elem()
		entitySlice := reflect.MakeSlice(reflect.SliceOf(entityType), 0, 0)
		entitySlicePtr := reflect.New(entitySlice.Type())
		entitySlicePtr.Elem().Set(entitySlice)

		result := t.db.DbConn.Unscoped().Find(entitySlicePtr.Interface())
		if result.Error != nil {
			return result.Error
		}

		count := entitySlicePtr.Elem().Len()
		if count != quantity {
			return fmt.Errorf("expected %d objects in '%s', got %d", quantity, table, count)
		}
		return nil
	}
	return fmt.Errorf("table '%s' not found in models", table)
}

func (t *testContext) theDbShouldContainObjectsInWithTheValues(quantity int, table string, content *godog.DocString) error {
	var criteria map[string]any
	if err := json.Unmarshal([]byte(content.Content), &criteria); err != nil {
		return err
	}

	if entity, ok := t.db.GetModel(table); ok {
		entityType := reflect.TypeOf(entity).Elem()
		entitySlice := reflect.MakeSlice(reflect.SliceOf(entityType), 0, 0)
		entitySlicePtr := reflect.New(entitySlice.Type())
		entitySlicePtr.Elem().Set(entitySlice)

		query := t.db.DbConn.Unscoped()
		for key, value := range criteria {
			query = query.Where(fmt.Sprintf("%s = ?", key), value)
		}

		result := query.Find(entitySlicePtr.Interface())
		if result.Error != nil && !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return result.Error
		}

		count := entitySlicePtr.Elem().Len()
		if count != quantity {
			return fmt.Errorf("expected %d objects in '%s' with criteria %v, got %d", quantity, table, criteria, count)
		}
		return nil
	}
	return fmt.Errorf("table '%s' not found in models", table)
}

func getFieldValue(object any, dotSeparatedField string) any {
	if object == nil {
		return nil
	}

	var objectMap map[string]any
	switch v := object.(type) {
	case map[string]any:
		objectMap = v
	default:
		objectJSON, _ := json.Marshal(object)
		if err := json.Unmarshal(objectJSON, &objectMap); err != nil {
			return nil
		}
	}

	fields := strings.Split(dotSeparatedField, ".")
	var field any = objectMap

	for _, currentField := range fields {
		if field == nil {
			return nil
		}

		if i, err := strconv.Atoi(currentField); err == nil {
			if arr, ok := field.([]any); ok && i < len(arr) {
				field = arr[i]
			} else {
				return nil
			}
		} else {
			if m, ok := field.(map[string]any); ok {
				field = m[currentField]
			} else {
				return nil
			}
		}
	}

	return field
}
