package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taskboard/task-user-api/internal/models"
	"github.com/taskboard/task-user-api/internal/repository"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type taskServiceTestEnv struct {
	db          *gorm.DB
	taskService *TaskService
	userService *UserService
}

func setupTaskServiceTestEnv(t *testing.T) taskServiceTestEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Task{},
	)
	require.NoError(t, err)

	userRepo := repository.NewUserRepository(db)
	taskRepo := repository.NewTaskRepository(db)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return taskServiceTestEnv{
		db:          db,
		taskService: NewTaskService(taskRepo, userRepo),
		userService: NewUserService(userRepo, taskRepo),
	}
}

func (env taskServiceTestEnv) createUser(t *testing.T, name string) *models.User {
	t.Helper()
	user := &models.User{Name: name}
	require.NoError(t, env.db.Create(user).Error)
	return user
}

func (env taskServiceTestEnv) createTask(t *testing.T, userID *uint64) *models.Task {
	t.Helper()
	task, err := env.taskService.CreateTask(CreateTaskInput{
		Title:       "Initial title",
		Description: "Initial description",
		UserID:      userID,
	})
	require.NoError(t, err)
	return task
}

func TestCreateTask_Defaults(t *testing.T) {
	env := setupTaskServiceTestEnv(t)

	task := env.createTask(t, nil)

	assert.Equal(t, models.TaskStatusNew, task.Status)
	assert.Nil(t, task.UserID)

	now := time.Now()
	wantDate := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	assert.Equal(t, wantDate, task.CreationDate)
}

func TestCreateTask_UnknownUserPersistsNothing(t *testing.T) {
	env := setupTaskServiceTestEnv(t)

	missing := uint64(99)
	_, err := env.taskService.CreateTask(CreateTaskInput{
		Title:       "T",
		Description: "D",
		UserID:      &missing,
	})
	require.ErrorIs(t, err, ErrUserNotFound)

	var count int64
	env.db.Model(&models.Task{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestUpdateTask_ReplacesEveryGovernedField(t *testing.T) {
	env := setupTaskServiceTestEnv(t)
	user := env.createUser(t, "John")
	task := env.createTask(t, &user.ID)

	updated, err := env.taskService.UpdateTask(task.ID, UpdateTaskInput{
		Title:       "New title",
		Description: "New description",
		Status:      "cancelled",
	})
	require.NoError(t, err)

	assert.Equal(t, "New title", updated.Title)
	assert.Equal(t, "New description", updated.Description)
	assert.Equal(t, models.TaskStatusCancelled, updated.Status)
	// A nil userId in a full update clears the assignment
	assert.Nil(t, updated.UserID)
}

func TestUpdateTask_RequiredFields(t *testing.T) {
	env := setupTaskServiceTestEnv(t)
	task := env.createTask(t, nil)

	cases := []struct {
		name    string
		input   UpdateTaskInput
		wantErr error
	}{
		{"blank title", UpdateTaskInput{Title: "  ", Description: "D", Status: "NEW"}, ErrTitleEmpty},
		{"blank description", UpdateTaskInput{Title: "T", Description: "", Status: "NEW"}, ErrDescriptionEmpty},
		{"blank status", UpdateTaskInput{Title: "T", Description: "D", Status: " "}, ErrStatusEmpty},
		{"invalid status", UpdateTaskInput{Title: "T", Description: "D", Status: "bogus"}, ErrInvalidStatus},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := env.taskService.UpdateTask(task.ID, tc.input)
			require.ErrorIs(t, err, tc.wantErr)

			var stored models.Task
			require.NoError(t, env.db.First(&stored, task.ID).Error)
			assert.Equal(t, "Initial title", stored.Title)
			assert.Equal(t, "Initial description", stored.Description)
			assert.Equal(t, models.TaskStatusNew, stored.Status)
		})
	}
}

func TestUpdateTask_UnknownUser(t *testing.T) {
	env := setupTaskServiceTestEnv(t)
	task := env.createTask(t, nil)

	missing := uint64(99)
	_, err := env.taskService.UpdateTask(task.ID, UpdateTaskInput{
		Title:       "T",
		Description: "D",
		Status:      "NEW",
		UserID:      &missing,
	})
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestPartialUpdateTask_EmptyInputIsNoop(t *testing.T) {
	env := setupTaskServiceTestEnv(t)
	user := env.createUser(t, "John")
	task := env.createTask(t, &user.ID)

	updated, err := env.taskService.PartialUpdateTask(task.ID, UpdateTaskInput{})
	require.NoError(t, err)

	assert.Equal(t, task.Title, updated.Title)
	assert.Equal(t, task.Description, updated.Description)
	assert.Equal(t, task.Status, updated.Status)
	require.NotNil(t, updated.UserID)
	assert.Equal(t, user.ID, *updated.UserID)
}

func TestPartialUpdateTask_BlankFieldsLeaveValues(t *testing.T) {
	env := setupTaskServiceTestEnv(t)
	task := env.createTask(t, nil)

	updated, err := env.taskService.PartialUpdateTask(task.ID, UpdateTaskInput{
		Title:       "  ",
		Description: "",
		Status:      "in_progress",
	})
	require.NoError(t, err)

	assert.Equal(t, "Initial title", updated.Title)
	assert.Equal(t, "Initial description", updated.Description)
	assert.Equal(t, models.TaskStatusInProgress, updated.Status)
}

func TestPartialUpdateTask_InvalidStatusLeavesRecord(t *testing.T) {
	env := setupTaskServiceTestEnv(t)
	task := env.createTask(t, nil)

	_, err := env.taskService.PartialUpdateTask(task.ID, UpdateTaskInput{
		Title:  "New title",
		Status: "bogus",
	})
	require.ErrorIs(t, err, ErrInvalidStatus)

	var stored models.Task
	require.NoError(t, env.db.First(&stored, task.ID).Error)
	assert.Equal(t, "Initial title", stored.Title)
	assert.Equal(t, models.TaskStatusNew, stored.Status)
}

func TestPartialUpdateTask_NeverClearsAssignment(t *testing.T) {
	env := setupTaskServiceTestEnv(t)
	user := env.createUser(t, "John")
	task := env.createTask(t, &user.ID)

	updated, err := env.taskService.PartialUpdateTask(task.ID, UpdateTaskInput{
		Title: "New title",
	})
	require.NoError(t, err)

	require.NotNil(t, updated.UserID)
	assert.Equal(t, user.ID, *updated.UserID)
}

func TestPartialUpdateTask_UnknownUser(t *testing.T) {
	env := setupTaskServiceTestEnv(t)
	task := env.createTask(t, nil)

	missing := uint64(99)
	_, err := env.taskService.PartialUpdateTask(task.ID, UpdateTaskInput{UserID: &missing})
	require.ErrorIs(t, err, ErrUserNotFound)

	var stored models.Task
	require.NoError(t, env.db.First(&stored, task.ID).Error)
	assert.Nil(t, stored.UserID)
}

func TestDeleteTask_RepeatFails(t *testing.T) {
	env := setupTaskServiceTestEnv(t)
	task := env.createTask(t, nil)

	require.NoError(t, env.taskService.DeleteTask(task.ID))

	err := env.taskService.DeleteTask(task.ID)
	assert.ErrorIs(t, err, ErrTaskNotFound)

	_, err = env.taskService.GetTask(task.ID)
	assert.ErrorIs(t, err, ErrTaskNotFound)
}

func TestAssignTask(t *testing.T) {
	env := setupTaskServiceTestEnv(t)
	user := env.createUser(t, "John")
	task := env.createTask(t, nil)

	updated, err := env.taskService.AssignTask(task.ID, user.ID)
	require.NoError(t, err)
	require.NotNil(t, updated.UserID)
	assert.Equal(t, user.ID, *updated.UserID)

	_, err = env.taskService.AssignTask(task.ID, 99)
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = env.taskService.AssignTask(42, user.ID)
	assert.ErrorIs(t, err, ErrTaskNotFound)
}

func TestListTasks_Window(t *testing.T) {
	env := setupTaskServiceTestEnv(t)
	for i := 0; i < 15; i++ {
		env.createTask(t, nil)
	}

	tasks, err := env.taskService.ListTasks(1, 10)
	require.NoError(t, err)
	require.Len(t, tasks, 5)
	assert.Equal(t, uint64(11), tasks[0].ID)
	assert.Equal(t, uint64(15), tasks[4].ID)
}

func TestListUserTasks(t *testing.T) {
	env := setupTaskServiceTestEnv(t)
	user := env.createUser(t, "John")
	env.createTask(t, &user.ID)
	env.createTask(t, nil)

	tasks, err := env.userService.ListUserTasks(user.ID)
	require.NoError(t, err)
	assert.Len(t, tasks, 1)

	_, err = env.userService.ListUserTasks(99)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
