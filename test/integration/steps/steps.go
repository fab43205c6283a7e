//go:build integration

// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/vitaltrack/backend/internal/application/adapter"
	"github.com/vitaltrack/backend/internal/application/usecase/user"
	"github.com/vitaltrack/backend/internal/application/usecase/weightgoal"
	"github.com/vitaltrack/backend/internal/domain/entity"
	"github.com/vitaltrack/backend/internal/infra/server/router"
	"github.com/vitaltrack/backend/internal/integration/adapters"
	"github.com/vitaltrack/backend/internal/integration/email"
	"github.com/vitaltrack/backend/internal/integration/entrypoint/controller"
	"github.com/vitaltrack/backend/internal/integration/entrypoint/middleware"
	"github.com/vitaltrack/backend/internal/integration/persistence"
	"github.com/vitaltrack/backend/internal/integration/persistence/model"
	"github.com/vitaltrack/backend/test/integration/mock"
)

const testJWTSecret = "test-jwt-secret-key-for-testing-purposes"

var serverInit sync.Once
var testDB *mock.Db
var testTokenService adapter.TokenService
var testEmailSender *email.MockEmailSender
var testServerPort int
var portInit sync.Once

func initializePort() {
	portInit.Do(func() {
		testServerPort = findAvailablePort()
		_ = os.Setenv("SERVER_PORT", strconv.Itoa(testServerPort))
		_ = os.Setenv("ENV", "test")
	})
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
	currentUserID int
	currentGoalID int
}

type response struct {
	status int
	body   any
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
		decimal.MarshalJSONWithoutQuotes = true
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	initializePort()

	test := &testContext{
		uri:        fmt.Sprintf("http://localhost:%d", testServerPort),
		client:     &http.Client{Timeout: 10 * time.Second},
		serverPort: testServerPort,
		db: mock.NewDb("vitaltrack", map[string]any{
			"users":        &model.UserModel{},
			"weight_goals": &model.WeightGoalModel{},
		}),
	}

	testDB = test.db

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		test.before()
		return ctx, nil
	})

	// Background steps
	ctx.Given(`^the API server is running$`, test.theAPIServerIsRunning)

	// User setup steps
	ctx.Given(`^a user exists with email "([^"]*)" and password "([^"]*)"$`, test.aUserExistsWithEmailAndPassword)
	ctx.Given(`^a user aged (\d+) exists with email "([^"]*)" and password "([^"]*)"$`, test.aUserAgedExistsWithEmailAndPassword)
	ctx.Given(`^the user is logged in with valid tokens$`, test.theUserIsLoggedInWithValidTokens)

	// Goal setup steps
	ctx.Given(`^an active weight goal exists from (\d+\.?\d*)kg to (\d+\.?\d*)kg over (\d+) weeks$`, test.anActiveWeightGoalExists)

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

	// Database assertion steps
	ctx.Then(`^the db should contain (\d+) objects in the "([^"]*)" table$`, test.theDbShouldContainObjectsInTheTable)

	// Email assertion steps
	ctx.Then(`^a confirmation email should have been sent to "([^"]*)"$`, test.aConfirmationEmailShouldHaveBeenSentTo)
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
	t.currentUserID = 0
	t.currentGoalID = 0

	if t.db != nil {
		_ = t.db.ClearDB()
	}
	_ = mock.ClearRedis(mock.NewRedis())
	if testEmailSender != nil {
		testEmailSender.Reset()
	}
}

func (t *testContext) startServer() {
	serverInit.Do(func() {
		gin.SetMode(gin.TestMode)

		// Create repositories
		userRepo := persistence.NewUserRepository(testDB.DbConn)
		goalRepo := persistence.NewWeightGoalRepository(testDB.DbConn)

		// Create adapters/services
		passwordService := adapters.NewPasswordService()
		testTokenService = adapters.NewTokenService(testJWTSecret, mock.NewRedis())
		testEmailSender = email.NewMockEmailSender()

		// Create user use cases
		registerUseCase := user.NewRegisterUserUseCase(userRepo, passwordService, testEmailSender, nil)
		loginUseCase := user.NewLoginUserUseCase(userRepo, passwordService, testTokenService)
		profileUseCase := user.NewGetProfileUseCase(userRepo)
		ageResolver := user.NewAgeResolver(userRepo)

		// Create weight goal use cases
		createGoalUseCase := weightgoal.NewCreateWeightGoalUseCase(goalRepo, ageResolver)
		getGoalUseCase := weightgoal.NewGetWeightGoalUseCase(goalRepo)
		listGoalsUseCase := weightgoal.NewListWeightGoalsUseCase(goalRepo)
		updateGoalUseCase := weightgoal.NewUpdateWeightGoalUseCase(goalRepo)
		deleteGoalUseCase := weightgoal.NewDeleteWeightGoalUseCase(goalRepo)
		reviseGoalUseCase := weightgoal.NewReviseWeightGoalUseCase(goalRepo, updateGoalUseCase)

		// Create controllers and middleware
		healthController := controller.NewHealthController(func() bool {
			return testDB != nil && testDB.DbConn != nil
		})
		authController := controller.NewAuthController(registerUseCase, loginUseCase, profileUseCase)
		weightGoalController := controller.NewWeightGoalController(
			createGoalUseCase,
			getGoalUseCase,
			listGoalsUseCase,
			updateGoalUseCase,
			deleteGoalUseCase,
			reviseGoalUseCase,
		)
		loginRateLimiter := middleware.NewRateLimiter()
		authMiddleware := middleware.NewAuthMiddleware(testTokenService)

		r := router.NewRouter(healthController, authController, weightGoalController, loginRateLimiter, authMiddleware)
		engine := r.Setup("test")

		server := &http.Server{
			Addr:    fmt.Sprintf(":%d", testServerPort),
			Handler: engine,
		}

		go func() {
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

func (t *testContext) aUserExistsWithEmailAndPassword(email, password string) error {
	return t.createUser(email, password, 30)
}

func (t *testContext) aUserAgedExistsWithEmailAndPassword(age int, email, password string) error {
	return t.createUser(email, password, age)
}

func (t *testContext) createUser(email, password string, age int) error {
	now := time.Now().UTC()
	birthDate := now.AddDate(-age, 0, -1)

	userModel := &model.UserModel{
		Name:            "Test User",
		Email:           strings.ToLower(email),
		PasswordHash:    hashPassword(password),
		BirthDate:       birthDate,
		Gender:          "female",
		HeightM:         1.70,
		CurrentWeightKg: 90,
		ActivityLevel:   "moderate",
		InitialProfile: model.InitialProfileJSON{InitialProfile: entity.InitialProfile{
			ProfileID:             uuid.NewString(),
			BMI:                   31.14,
			BMICategory:           entity.BMICategoryObesity1,
			RiskLevel:             entity.RiskLevelMedium,
			Recommendations:       []string{"Set a realistic weekly loss target"},
			SuggestedTargetWeight: 72.0,
		}},
		EmailConfirmed:  true,
		TermsAcceptedAt: now,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := t.db.DbConn.Create(userModel).Error; err != nil {
		return err
	}
	t.currentUserID = userModel.ID
	return nil
}

func hashPassword(password string) string {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		panic(fmt.Sprintf("failed to hash password: %v", err))
	}
	return string(hashedBytes)
}

func (t *testContext) theUserIsLoggedInWithValidTokens() error {
	if t.currentUserID == 0 {
		return errors.New("no user has been created for this scenario")
	}

	var userModel model.UserModel
	if err := t.db.DbConn.First(&userModel, t.currentUserID).Error; err != nil {
		return fmt.Errorf("user not found: %w", err)
	}

	pair, err := testTokenService.GenerateTokenPair(context.Background(), userModel.ID, userModel.Email)
	if err != nil {
		return fmt.Errorf("failed to generate tokens: %w", err)
	}

	t.accessToken = pair.AccessToken
	t.refreshToken = pair.RefreshToken
	return nil
}

func (t *testContext) anActiveWeightGoalExists(currentWeight, targetWeight string, durationWeeks int) error {
	body := fmt.Sprintf(`{
		"currentWeight": %s,
		"targetWeight": %s,
		"durationWeeks": %d,
		"mainMotivation": "health",
		"preferredApproach": "combined",
		"previousExperience": "first_time"
	}`, currentWeight, targetWeight, durationWeeks)

	if err := t.executeRequest(http.MethodPost, "/api/v1/weight-goals", []byte(body)); err != nil {
		return err
	}
	if t.response.status != http.StatusCreated {
		return fmt.Errorf("failed to create goal fixture: status %d, body %v", t.response.status, t.response.body)
	}
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
	path = t.replacePlaceholders(path)
	return t.executeRequest(method, path, nil)
}

func (t *testContext) iSendARequestToWithBody(method, path string, body *godog.DocString) error {
	path = t.replacePlaceholders(path)

	var payload []byte
	if body != nil && body.Content != "" {
		payload = []byte(t.replacePlaceholders(body.Content))
	}
	return t.executeRequest(method, path, payload)
}

func (t *testContext) replacePlaceholders(content string) string {
	content = strings.ReplaceAll(content, "{{access_token}}", t.accessToken)
	content = strings.ReplaceAll(content, "{{refresh_token}}", t.refreshToken)
	content = strings.ReplaceAll(content, "{{goal_id}}", strconv.Itoa(t.currentGoalID))
	content = strings.ReplaceAll(content, "{{user_id}}", strconv.Itoa(t.currentUserID))
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

		// Capture the goal ID from goal responses
		if _, isGoal := responseBody["safetyValidation"]; isGoal {
			if id, ok := responseBody["id"].(float64); ok {
				t.currentGoalID = int(id)
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

	value := getFieldValue(t.response.body, field)
	if value == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, t.response.body)
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

	value := getFieldValue(t.response.body, field)
	if value == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, t.response.body)
	}
	return nil
}

func (t *testContext) theDbShouldContainObjectsInTheTable(quantity int, table string) error {
	entityModel, ok := t.db.GetModel(table)
	if !ok {
		return fmt.Errorf("table '%s' not found in models", table)
	}

	entityType := reflect.TypeOf(entityModel).Elem()
	entitySlice := reflect.MakeSlice(reflect.SliceOf(entityType), 0, 0)
	entitySlicePtr := reflect.New(entitySlice.Type())
	entitySlicePtr.Elem().Set(entitySlice)

	result := t.db.DbConn.Unscoped().Find(entitySlicePtr.Interface())
	if result.Error != nil && !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return result.Error
	}

	count := entitySlicePtr.Elem().Len()
	if count != quantity {
		return fmt.Errorf("expected %d objects in '%s', got %d", quantity, table, count)
	}
	return nil
}

func (t *testContext) aConfirmationEmailShouldHaveBeenSentTo(recipient string) error {
	if testEmailSender == nil {
		return errors.New("email sender is not initialized")
	}
	for _, sent := range testEmailSender.SentEmails {
		if sent.To == strings.ToLower(recipient) {
			return nil
		}
	}
	return fmt.Errorf("no email sent to '%s' (sent: %d)", recipient, len(testEmailSender.SentEmails))
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
