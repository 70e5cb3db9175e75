package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/task-manager/internal/models"
)

func TestStorage_RegisterUser(t *testing.T) {
	tests := []struct {
		name    string
		user    models.User
		wantErr error
		setup   func(f *TestDataFactory, t *testing.T)
	}{
		{
			name: "successful register user",
			user: models.User{
				UID:          "11111111-1111-1111-1111-111111111111",
				Name:         "Ann",
				Email:        "ann@example.com",
				PasswordHash: "hashedpassword",
			},
		},
		{
			name: "register user with duplicate email",
			user: models.User{
				UID:          "22222222-2222-2222-2222-222222222222",
				Name:         "Another Ann",
				Email:        "ann@example.com",
				PasswordHash: "otherhash",
			},
			wantErr: ErrEmailTaken,
			setup: func(f *TestDataFactory, t *testing.T) {
				f.CreateUser(t, "11111111-1111-1111-1111-111111111111",
					"Ann", "ann@example.com", "hashedpassword")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			storage, cleanup := setupTestDatabase(t)
			defer cleanup()

			factory := NewTestDataFactory(storage)
			if tt.setup != nil {
				tt.setup(factory, t)
			}

			gotUID, err := storage.RegisterUser(context.Background(), tt.user)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, gotUID)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.user.UID, gotUID)

			NewTestVerification(storage).VerifyUserExists(t, gotUID)
		})
	}
}

func TestStorage_GetUserByEmail(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		want    *models.User
		wantErr error
		setup   func(f *TestDataFactory, t *testing.T)
	}{
		{
			name:  "successful get user by email",
			email: "ann@example.com",
			want: &models.User{
				UID:          "11111111-1111-1111-1111-111111111111",
				Name:         "Ann",
				Email:        "ann@example.com",
				PasswordHash: "hashedpassword",
			},
			setup: func(f *TestDataFactory, t *testing.T) {
				f.CreateUser(t, "11111111-1111-1111-1111-111111111111",
					"Ann", "ann@example.com", "hashedpassword")
			},
		},
		{
			name:    "get non-existing user",
			email:   "nobody@example.com",
			wantErr: ErrUserNotFound,
			setup:   func(_ *TestDataFactory, _ *testing.T) {},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			storage, cleanup := setupTestDatabase(t)
			defer cleanup()

			tt.setup(NewTestDataFactory(storage), t)

			got, err := storage.GetUserByEmail(context.Background(), tt.email)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, got)

			assert.Equal(t, tt.want.UID, got.UID)
			assert.Equal(t, tt.want.Name, got.Name)
			assert.Equal(t, tt.want.Email, got.Email)
			assert.Equal(t, tt.want.PasswordHash, got.PasswordHash)
			assert.False(t, got.CreatedAt.IsZero())
		})
	}
}

func TestStorage_GetUser(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	factory := NewTestDataFactory(storage)
	factory.CreateUser(t, "11111111-1111-1111-1111-111111111111",
		"Ann", "ann@example.com", "hashedpassword")

	got, err := storage.GetUser(context.Background(), "11111111-1111-1111-1111-111111111111")
	require.NoError(t, err)
	assert.Equal(t, "Ann", got.Name)
	assert.Equal(t, "ann@example.com", got.Email)

	_, err = storage.GetUser(context.Background(), "99999999-9999-9999-9999-999999999999")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestStorage_CreateTask(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	factory := NewTestDataFactory(storage)
	factory.CreateUser(t, "11111111-1111-1111-1111-111111111111",
		"Ann", "ann@example.com", "hashedpassword")

	dueDate := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	gotID, err := storage.CreateTask(context.Background(), models.Task{
		Title:       "Buy milk",
		Description: "2 liters",
		UserUID:     "11111111-1111-1111-1111-111111111111",
		DueDate:     &dueDate,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, gotID)

	verify := NewTestVerification(storage)
	verify.VerifyTaskExists(t, gotID)
	verify.VerifyTaskData(t, gotID, "Buy milk", false)
}

func TestStorage_ReadTask(t *testing.T) {
	ownerUID := "11111111-1111-1111-1111-111111111111"
	strangerUID := "22222222-2222-2222-2222-222222222222"

	tests := []struct {
		name    string
		id      int
		userUID string
		want    *models.Task
		wantErr error
	}{
		{
			name:    "successful read own task",
			id:      1,
			userUID: ownerUID,
			want: &models.Task{
				ID:          1,
				Title:       "Buy milk",
				Description: "2 liters",
				UserUID:     ownerUID,
			},
		},
		{
			name:    "read non-existing task",
			id:      999,
			userUID: ownerUID,
			wantErr: ErrTaskNotFound,
		},
		{
			name:    "read foreign task",
			id:      1,
			userUID: strangerUID,
			wantErr: ErrTaskNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			storage, cleanup := setupTestDatabase(t)
			defer cleanup()

			factory := NewTestDataFactory(storage)
			factory.CreateUser(t, ownerUID, "Ann", "ann@example.com", "hashedpassword")
			factory.CreateUser(t, strangerUID, "Bob", "bob@example.com", "hashedpassword")
			factory.CreateTask(t, "Buy milk", "2 liters", false, ownerUID, nil)

			got, err := storage.ReadTask(context.Background(), tt.id, tt.userUID)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, got)

			assert.Equal(t, tt.want.ID, got.ID)
			assert.Equal(t, tt.want.Title, got.Title)
			assert.Equal(t, tt.want.Description, got.Description)
			assert.Equal(t, tt.want.UserUID, got.UserUID)
			assert.Nil(t, got.DueDate)
		})
	}
}

func TestStorage_UpdateTask(t *testing.T) {
	ownerUID := "11111111-1111-1111-1111-111111111111"

	tests := []struct {
		name      string
		id        int
		userUID   string
		wantCount int
	}{
		{
			name:      "successful update",
			id:        1,
			userUID:   ownerUID,
			wantCount: 1,
		},
		{
			name:      "update non-existing task",
			id:        999,
			userUID:   ownerUID,
			wantCount: 0,
		},
		{
			name:      "update foreign task",
			id:        1,
			userUID:   "22222222-2222-2222-2222-222222222222",
			wantCount: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			storage, cleanup := setupTestDatabase(t)
			defer cleanup()

			factory := NewTestDataFactory(storage)
			factory.CreateUser(t, ownerUID, "Ann", "ann@example.com", "hashedpassword")
			factory.CreateUser(t, "22222222-2222-2222-2222-222222222222",
				"Bob", "bob@example.com", "hashedpassword")
			factory.CreateTask(t, "Buy milk", "2 liters", false, ownerUID, nil)

			gotCount, err := storage.UpdateTask(context.Background(), models.Task{
				Title:     "Buy bread",
				Completed: true,
			}, tt.id, tt.userUID)

			require.NoError(t, err)
			assert.Equal(t, tt.wantCount, gotCount)

			if tt.wantCount == 1 {
				NewTestVerification(storage).VerifyTaskData(t, tt.id, "Buy bread", true)
			}
		})
	}
}

func TestStorage_RemoveTask(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	ownerUID := "11111111-1111-1111-1111-111111111111"
	factory := NewTestDataFactory(storage)
	factory.CreateUser(t, ownerUID, "Ann", "ann@example.com", "hashedpassword")
	taskID := factory.CreateTask(t, "Buy milk", "", false, ownerUID, nil)

	gotCount, err := storage.RemoveTask(context.Background(), taskID, ownerUID)
	require.NoError(t, err)
	assert.Equal(t, 1, gotCount)
	NewTestVerification(storage).VerifyTaskDeleted(t, taskID)

	gotCount, err = storage.RemoveTask(context.Background(), taskID, ownerUID)
	require.NoError(t, err)
	assert.Equal(t, 0, gotCount)
}

func TestStorage_ListTasks(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	ownerUID := "11111111-1111-1111-1111-111111111111"
	strangerUID := "22222222-2222-2222-2222-222222222222"

	factory := NewTestDataFactory(storage)
	factory.CreateUser(t, ownerUID, "Ann", "ann@example.com", "hashedpassword")
	factory.CreateUser(t, strangerUID, "Bob", "bob@example.com", "hashedpassword")
	factory.CreateTask(t, "First", "", false, ownerUID, nil)
	factory.CreateTask(t, "Second", "", true, ownerUID, nil)
	factory.CreateTask(t, "Third", "", false, ownerUID, nil)
	factory.CreateTask(t, "Foreign", "", false, strangerUID, nil)

	got, err := storage.ListTasks(context.Background(), ownerUID, 10, 0)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "First", got[0].Title)
	assert.Equal(t, "Second", got[1].Title)
	assert.Equal(t, "Third", got[2].Title)

	// Пагинация
	got, err = storage.ListTasks(context.Background(), ownerUID, 2, 1)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Second", got[0].Title)
	assert.Equal(t, "Third", got[1].Title)
}

func TestStorage_FindTasksDueTomorrow(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	ownerUID := "11111111-1111-1111-1111-111111111111"
	factory := NewTestDataFactory(storage)
	factory.CreateUser(t, ownerUID, "Ann", "ann@example.com", "hashedpassword")

	tomorrow := time.Now().AddDate(0, 0, 1)
	nextWeek := time.Now().AddDate(0, 0, 7)

	factory.CreateTask(t, "Due tomorrow", "", false, ownerUID, &tomorrow)
	factory.CreateTask(t, "Already done", "", true, ownerUID, &tomorrow)
	factory.CreateTask(t, "Due next week", "", false, ownerUID, &nextWeek)
	factory.CreateTask(t, "No due date", "", false, ownerUID, nil)

	got, err := storage.FindTasksDueTomorrow(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Due tomorrow", got[0].Title)
	assert.Equal(t, "ann@example.com", got[0].Email)
	assert.Equal(t, "Ann", got[0].Name)
}
