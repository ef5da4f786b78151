package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"halaqat/domain"
)

func newTestStore() domain.Storage {
	return NewMemoryStorage(false)
}

func createTestTeacher(t *testing.T, store domain.Storage, username string) *domain.Teacher {
	t.Helper()
	teacher, err := store.CreateTeacher(context.Background(), &domain.InsertTeacher{
		Username:   username,
		Password:   "123456",
		Name:       "أ. اختبار",
		Gender:     domain.GenderMale,
		CircleName: "حلقة الاختبار",
	})
	require.NoError(t, err)
	require.NotNil(t, teacher)
	return teacher
}

func createTestStudent(t *testing.T, store domain.Storage, teacherID string) *domain.Student {
	t.Helper()
	student, err := store.CreateStudent(context.Background(), &domain.InsertStudent{
		Name:      "عبدالله أحمد",
		Age:       10,
		Level:     domain.LevelBeginner,
		TeacherID: teacherID,
	})
	require.NoError(t, err)
	require.NotNil(t, student)
	return student
}

func TestTeacherCreateAndGet(t *testing.T) {
	store := newTestStore()
	ctx := context.Background()

	created := createTestTeacher(t, store, "abdalrazaq")
	assert.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	got := store.GetTeacher(ctx, created.ID)
	require.NotNil(t, got)
	assert.Equal(t, created.Username, got.Username)
	assert.Equal(t, created.Name, got.Name)
	assert.Equal(t, created.CircleName, got.CircleName)

	byUsername := store.GetTeacherByUsername(ctx, "abdalrazaq")
	require.NotNil(t, byUsername)
	assert.Equal(t, created.ID, byUsername.ID)
}

func TestGetTeacherMissingReturnsNil(t *testing.T) {
	store := newTestStore()
	ctx := context.Background()

	assert.Nil(t, store.GetTeacher(ctx, "nonexistent"))
	assert.Nil(t, store.GetTeacherByUsername(ctx, "nobody"))
	assert.Empty(t, store.GetAllTeachers(ctx))
}

func TestValidateTeacher(t *testing.T) {
	store := newTestStore()
	ctx := context.Background()

	createTestTeacher(t, store, "hassan")

	valid := store.ValidateTeacher(ctx, "hassan", "123456")
	require.NotNil(t, valid)
	assert.Equal(t, "hassan", valid.Username)

	assert.Nil(t, store.ValidateTeacher(ctx, "hassan", "wrong"))
	assert.Nil(t, store.ValidateTeacher(ctx, "unknown", "123456"))
	assert.Nil(t, store.ValidateTeacher(ctx, "hassan", ""))
}

func TestValidateParent(t *testing.T) {
	store := newTestStore()
	ctx := context.Background()

	parent, err := store.CreateParent(ctx, &domain.InsertParent{
		Username:   "parent1",
		Password:   "123456",
		FatherName: "أحمد محمد",
		Phone:      "0505123456",
	})
	require.NoError(t, err)

	valid := store.ValidateParent(ctx, "parent1", "123456")
	require.NotNil(t, valid)
	assert.Equal(t, parent.ID, valid.ID)

	assert.Nil(t, store.ValidateParent(ctx, "parent1", "654321"))
	assert.Nil(t, store.ValidateParent(ctx, "ghost", "123456"))
}

func TestStudentLifecycle(t *testing.T) {
	store := newTestStore()
	ctx := context.Background()

	teacher := createTestTeacher(t, store, "saud")
	student := createTestStudent(t, store, teacher.ID)

	got := store.GetStudent(ctx, student.ID)
	require.NotNil(t, got)
	assert.Equal(t, student.Name, got.Name)
	assert.Equal(t, teacher.ID, got.TeacherID)

	byTeacher := store.GetStudentsByTeacher(ctx, teacher.ID)
	require.Len(t, byTeacher, 1)
	assert.Equal(t, student.ID, byTeacher[0].ID)

	// delete: true once, false afterwards
	assert.True(t, store.DeleteStudent(ctx, student.ID))
	assert.False(t, store.DeleteStudent(ctx, student.ID))
	assert.Nil(t, store.GetStudent(ctx, student.ID))
	assert.Empty(t, store.GetStudentsByTeacher(ctx, teacher.ID))
}

func TestUpdateStudentPartial(t *testing.T) {
	store := newTestStore()
	ctx := context.Background()

	teacher := createTestTeacher(t, store, "saleh")
	student := createTestStudent(t, store, teacher.ID)

	newName := "محمد عبدالله"
	updated := store.UpdateStudent(ctx, student.ID, &domain.StudentPatch{Name: &newName})
	require.NotNil(t, updated)
	assert.Equal(t, newName, updated.Name)

	// untouched fields keep their values
	assert.Equal(t, student.Age, updated.Age)
	assert.Equal(t, student.Level, updated.Level)
	assert.Equal(t, student.TeacherID, updated.TeacherID)
}

func TestUpdateStudentMissingID(t *testing.T) {
	store := newTestStore()
	ctx := context.Background()

	teacher := createTestTeacher(t, store, "nabil")
	student := createTestStudent(t, store, teacher.ID)

	newName := "اسم جديد"
	assert.Nil(t, store.UpdateStudent(ctx, "nonexistent", &domain.StudentPatch{Name: &newName}))

	// no side effect on existing rows
	got := store.GetStudent(ctx, student.ID)
	require.NotNil(t, got)
	assert.Equal(t, student.Name, got.Name)
}

func TestUpdateStudentEmptyPatch(t *testing.T) {
	store := newTestStore()
	ctx := context.Background()

	teacher := createTestTeacher(t, store, "abdullah")
	student := createTestStudent(t, store, teacher.ID)

	updated := store.UpdateStudent(ctx, student.ID, &domain.StudentPatch{})
	require.NotNil(t, updated)
	assert.Equal(t, student.Name, updated.Name)
	assert.Equal(t, student.Age, updated.Age)
}

func TestGetStudentsByParent(t *testing.T) {
	store := newTestStore()
	ctx := context.Background()

	teacher := createTestTeacher(t, store, "ibrahim")
	parent, err := store.CreateParent(ctx, &domain.InsertParent{
		Username:   "parent2",
		Password:   "123456",
		FatherName: "محمد عبدالله",
		Phone:      "0505234567",
	})
	require.NoError(t, err)

	_, err = store.CreateStudent(ctx, &domain.InsertStudent{
		Name:      "فاطمة محمد",
		Age:       9,
		Level:     domain.LevelIntermediate,
		TeacherID: teacher.ID,
		ParentID:  &parent.ID,
	})
	require.NoError(t, err)
	createTestStudent(t, store, teacher.ID) // no parent

	children := store.GetStudentsByParent(ctx, parent.ID)
	require.Len(t, children, 1)
	assert.Equal(t, "فاطمة محمد", children[0].Name)

	assert.Empty(t, store.GetStudentsByParent(ctx, "nonexistent"))
}

func TestDailyRecordLifecycle(t *testing.T) {
	store := newTestStore()
	ctx := context.Background()

	teacher := createTestTeacher(t, store, "hind")
	student := createTestStudent(t, store, teacher.ID)

	lesson := "سورة البقرة ١-٥"
	score := 95
	record, err := store.CreateDailyRecord(ctx, &domain.InsertDailyRecord{
		StudentID:   student.ID,
		TeacherID:   teacher.ID,
		HijriDate:   "1447-03-10",
		Day:         "الاثنين",
		DailyLesson: &lesson,
		TotalScore:  &score,
	})
	require.NoError(t, err)
	require.NotNil(t, record)

	got := store.GetDailyRecord(ctx, record.ID)
	require.NotNil(t, got)
	require.NotNil(t, got.DailyLesson)
	assert.Equal(t, lesson, *got.DailyLesson)
	require.NotNil(t, got.TotalScore)
	assert.Equal(t, score, *got.TotalScore)
	assert.Nil(t, got.Notes)

	newScore := 80
	updated := store.UpdateDailyRecord(ctx, record.ID, &domain.DailyRecordPatch{TotalScore: &newScore})
	require.NotNil(t, updated)
	assert.Equal(t, newScore, *updated.TotalScore)
	assert.Equal(t, lesson, *updated.DailyLesson)

	assert.Nil(t, store.UpdateDailyRecord(ctx, "nonexistent", &domain.DailyRecordPatch{TotalScore: &newScore}))

	assert.True(t, store.DeleteDailyRecord(ctx, record.ID))
	assert.False(t, store.DeleteDailyRecord(ctx, record.ID))
	assert.Nil(t, store.GetDailyRecord(ctx, record.ID))
}

func TestDailyRecordsNewestFirst(t *testing.T) {
	store := newTestStore()
	ctx := context.Background()

	teacher := createTestTeacher(t, store, "nour")
	student := createTestStudent(t, store, teacher.ID)

	days := []string{"السبت", "الأحد", "الاثنين"}
	for _, day := range days {
		_, err := store.CreateDailyRecord(ctx, &domain.InsertDailyRecord{
			StudentID: student.ID,
			TeacherID: teacher.ID,
			HijriDate: "1447-03-10",
			Day:       day,
		})
		require.NoError(t, err)
		time.Sleep(2 * time.Millisecond)
	}

	byStudent := store.GetDailyRecordsByStudent(ctx, student.ID)
	require.Len(t, byStudent, 3)
	assert.Equal(t, "الاثنين", byStudent[0].Day)
	assert.Equal(t, "الأحد", byStudent[1].Day)
	assert.Equal(t, "السبت", byStudent[2].Day)

	byTeacher := store.GetDailyRecordsByTeacher(ctx, teacher.ID)
	require.Len(t, byTeacher, 3)
	assert.Equal(t, "الاثنين", byTeacher[0].Day)
}

func TestQuranErrorLifecycle(t *testing.T) {
	store := newTestStore()
	ctx := context.Background()

	teacher := createTestTeacher(t, store, "asma")
	student := createTestStudent(t, store, teacher.ID)

	quranError, err := store.CreateQuranError(ctx, &domain.InsertQuranError{
		StudentID:  student.ID,
		Surah:      "البقرة",
		Verse:      255,
		PageNumber: 42,
		ErrorType:  domain.ErrorTypeRepeated,
		Position:   []byte(`{"wordIndex":3}`),
	})
	require.NoError(t, err)
	require.NotNil(t, quranError)

	marks := store.GetQuranErrorsByStudent(ctx, student.ID)
	require.Len(t, marks, 1)
	assert.Equal(t, "البقرة", marks[0].Surah)
	assert.Equal(t, 255, marks[0].Verse)
	assert.Equal(t, domain.ErrorTypeRepeated, marks[0].ErrorType)

	assert.True(t, store.DeleteQuranError(ctx, quranError.ID))
	assert.False(t, store.DeleteQuranError(ctx, quranError.ID))
	assert.Empty(t, store.GetQuranErrorsByStudent(ctx, student.ID))
}

func TestListsAreEmptyNotNil(t *testing.T) {
	store := newTestStore()
	ctx := context.Background()

	assert.NotNil(t, store.GetAllStudents(ctx))
	assert.NotNil(t, store.GetStudentsByTeacher(ctx, "x"))
	assert.NotNil(t, store.GetStudentsByParent(ctx, "x"))
	assert.NotNil(t, store.GetDailyRecordsByStudent(ctx, "x"))
	assert.NotNil(t, store.GetDailyRecordsByTeacher(ctx, "x"))
	assert.NotNil(t, store.GetQuranErrorsByStudent(ctx, "x"))
}

func TestSeededStore(t *testing.T) {
	store := NewMemoryStorage(true)
	ctx := context.Background()

	teachers := store.GetAllTeachers(ctx)
	assert.Len(t, teachers, len(SeedTeachers))

	// roster logins work out of the box
	teacher := store.ValidateTeacher(ctx, "abdalrazaq", "123456")
	require.NotNil(t, teacher)
	assert.Equal(t, domain.GenderMale, teacher.Gender)

	// sample students reference teachers that actually exist
	for _, student := range store.GetAllStudents(ctx) {
		assigned := store.GetTeacher(ctx, student.TeacherID)
		require.NotNil(t, assigned)
	}
}

func TestEnsureTeachersSeeded(t *testing.T) {
	store := newTestStore()
	ctx := context.Background()

	EnsureTeachersSeeded(ctx, store)
	require.Len(t, store.GetAllTeachers(ctx), len(SeedTeachers))

	// second call is a no-op
	EnsureTeachersSeeded(ctx, store)
	assert.Len(t, store.GetAllTeachers(ctx), len(SeedTeachers))
}
