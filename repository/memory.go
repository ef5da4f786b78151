package repository

import (
	"context"
	"math/rand"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"halaqat/domain"
	"halaqat/utils"
)

// memoryStorage keeps everything in process-local maps. Data is lost on
// restart; concurrent writers race with last-write-wins semantics. The mutex
// only protects the maps themselves (Go maps fault on concurrent mutation),
// it does not add any cross-operation atomicity.
type memoryStorage struct {
	mu           sync.RWMutex
	teachers     map[string]domain.Teacher
	parents      map[string]domain.Parent
	students     map[string]domain.Student
	dailyRecords map[string]domain.DailyRecord
	quranErrors  map[string]domain.QuranError

	// insertion sequence per record id, tiebreaker for the
	// newest-first ordering when timestamps collide
	recordSeq map[string]uint64
	seq       uint64
}

// NewMemoryStorage builds the fallback backend used when no database is
// configured. With seed=true it starts with the fixed teacher roster plus
// sample parents and students for demo use.
func NewMemoryStorage(seed bool) domain.Storage {
	s := &memoryStorage{
		teachers:     make(map[string]domain.Teacher),
		parents:      make(map[string]domain.Parent),
		students:     make(map[string]domain.Student),
		dailyRecords: make(map[string]domain.DailyRecord),
		quranErrors:  make(map[string]domain.QuranError),
		recordSeq:    make(map[string]uint64),
	}
	if seed {
		s.seedData()
	}
	return s
}

func (s *memoryStorage) seedData() {
	ctx := context.Background()

	for i := range SeedTeachers {
		payload := SeedTeachers[i]
		s.CreateTeacher(ctx, &payload)
	}

	var parents []domain.Parent
	for i := range seedParents {
		payload := seedParents[i]
		parent, _ := s.CreateParent(ctx, &payload)
		parents = append(parents, *parent)
	}

	var male, female []domain.Teacher
	for _, t := range s.teachers {
		if t.Gender == domain.GenderMale {
			male = append(male, t)
		} else {
			female = append(female, t)
		}
	}

	for _, sample := range seedStudents {
		pool := male
		if sample.teacherGender == domain.GenderFemale {
			pool = female
		}
		if len(pool) == 0 || sample.parentIndex >= len(parents) {
			continue
		}
		teacher := pool[rand.Intn(len(pool))]
		parentID := parents[sample.parentIndex].ID
		s.CreateStudent(ctx, &domain.InsertStudent{
			Name:      sample.name,
			Age:       sample.age,
			Level:     sample.level,
			TeacherID: teacher.ID,
			ParentID:  &parentID,
		})
	}
}

// Teachers

func (s *memoryStorage) GetTeacher(_ context.Context, id string) *domain.Teacher {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if teacher, ok := s.teachers[id]; ok {
		return &teacher
	}
	return nil
}

func (s *memoryStorage) GetTeacherByUsername(_ context.Context, username string) *domain.Teacher {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, teacher := range s.teachers {
		if teacher.Username == username {
			t := teacher
			return &t
		}
	}
	return nil
}

func (s *memoryStorage) GetAllTeachers(_ context.Context) []domain.Teacher {
	s.mu.RLock()
	defer s.mu.RUnlock()
	teachers := make([]domain.Teacher, 0, len(s.teachers))
	for _, teacher := range s.teachers {
		teachers = append(teachers, teacher)
	}
	return teachers
}

func (s *memoryStorage) CreateTeacher(_ context.Context, payload *domain.InsertTeacher) (*domain.Teacher, error) {
	teacher := domain.Teacher{
		ID:         uuid.NewString(),
		Username:   payload.Username,
		Password:   payload.Password,
		Name:       payload.Name,
		Gender:     payload.Gender,
		CircleName: payload.CircleName,
		CreatedAt:  time.Now(),
	}
	s.mu.Lock()
	s.teachers[teacher.ID] = teacher
	s.mu.Unlock()
	return &teacher, nil
}

func (s *memoryStorage) ValidateTeacher(ctx context.Context, username, password string) *domain.Teacher {
	teacher := s.GetTeacherByUsername(ctx, username)
	if teacher != nil && utils.ComparePassword(teacher.Password, password) {
		return teacher
	}
	return nil
}

// Parents

func (s *memoryStorage) GetParent(_ context.Context, id string) *domain.Parent {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if parent, ok := s.parents[id]; ok {
		return &parent
	}
	return nil
}

func (s *memoryStorage) GetParentByUsername(_ context.Context, username string) *domain.Parent {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, parent := range s.parents {
		if parent.Username == username {
			p := parent
			return &p
		}
	}
	return nil
}

func (s *memoryStorage) CreateParent(_ context.Context, payload *domain.InsertParent) (*domain.Parent, error) {
	parent := domain.Parent{
		ID:         uuid.NewString(),
		Username:   payload.Username,
		Password:   payload.Password,
		FatherName: payload.FatherName,
		MotherName: payload.MotherName,
		Phone:      payload.Phone,
		Email:      payload.Email,
		CreatedAt:  time.Now(),
	}
	s.mu.Lock()
	s.parents[parent.ID] = parent
	s.mu.Unlock()
	return &parent, nil
}

func (s *memoryStorage) ValidateParent(ctx context.Context, username, password string) *domain.Parent {
	parent := s.GetParentByUsername(ctx, username)
	if parent != nil && utils.ComparePassword(parent.Password, password) {
		return parent
	}
	return nil
}

// Students

func (s *memoryStorage) GetStudent(_ context.Context, id string) *domain.Student {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if student, ok := s.students[id]; ok {
		return &student
	}
	return nil
}

func (s *memoryStorage) GetAllStudents(_ context.Context) []domain.Student {
	s.mu.RLock()
	defer s.mu.RUnlock()
	students := make([]domain.Student, 0, len(s.students))
	for _, student := range s.students {
		students = append(students, student)
	}
	return students
}

func (s *memoryStorage) GetStudentsByTeacher(_ context.Context, teacherID string) []domain.Student {
	s.mu.RLock()
	defer s.mu.RUnlock()
	students := make([]domain.Student, 0)
	for _, student := range s.students {
		if student.TeacherID == teacherID {
			students = append(students, student)
		}
	}
	return students
}

func (s *memoryStorage) GetStudentsByParent(_ context.Context, parentID string) []domain.Student {
	s.mu.RLock()
	defer s.mu.RUnlock()
	students := make([]domain.Student, 0)
	for _, student := range s.students {
		if student.ParentID != nil && *student.ParentID == parentID {
			students = append(students, student)
		}
	}
	return students
}

func (s *memoryStorage) CreateStudent(_ context.Context, payload *domain.InsertStudent) (*domain.Student, error) {
	student := domain.Student{
		ID:        uuid.NewString(),
		Name:      payload.Name,
		Age:       payload.Age,
		Phone:     payload.Phone,
		Level:     payload.Level,
		TeacherID: payload.TeacherID,
		ParentID:  payload.ParentID,
		CreatedAt: time.Now(),
	}
	s.mu.Lock()
	s.students[student.ID] = student
	s.mu.Unlock()
	return &student, nil
}

func (s *memoryStorage) UpdateStudent(_ context.Context, id string, patch *domain.StudentPatch) *domain.Student {
	s.mu.Lock()
	defer s.mu.Unlock()
	student, ok := s.students[id]
	if !ok {
		return nil
	}
	applyStudentPatch(&student, patch)
	s.students[id] = student
	return &student
}

func (s *memoryStorage) DeleteStudent(_ context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.students[id]; !ok {
		return false
	}
	delete(s.students, id)
	return true
}

// Daily records

func (s *memoryStorage) GetDailyRecord(_ context.Context, id string) *domain.DailyRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if record, ok := s.dailyRecords[id]; ok {
		return &record
	}
	return nil
}

func (s *memoryStorage) GetDailyRecordsByStudent(_ context.Context, studentID string) []domain.DailyRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	records := make([]domain.DailyRecord, 0)
	for _, record := range s.dailyRecords {
		if record.StudentID == studentID {
			records = append(records, record)
		}
	}
	s.sortNewestFirst(records)
	return records
}

func (s *memoryStorage) GetDailyRecordsByTeacher(_ context.Context, teacherID string) []domain.DailyRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	records := make([]domain.DailyRecord, 0)
	for _, record := range s.dailyRecords {
		if record.TeacherID == teacherID {
			records = append(records, record)
		}
	}
	s.sortNewestFirst(records)
	return records
}

// sortNewestFirst orders by creation time descending; same-timestamp records
// fall back to insertion order. Callers must hold at least the read lock.
func (s *memoryStorage) sortNewestFirst(records []domain.DailyRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		if records[i].CreatedAt.Equal(records[j].CreatedAt) {
			return s.recordSeq[records[i].ID] > s.recordSeq[records[j].ID]
		}
		return records[i].CreatedAt.After(records[j].CreatedAt)
	})
}

func (s *memoryStorage) CreateDailyRecord(_ context.Context, payload *domain.InsertDailyRecord) (*domain.DailyRecord, error) {
	record := domain.DailyRecord{
		ID:              uuid.NewString(),
		StudentID:       payload.StudentID,
		TeacherID:       payload.TeacherID,
		HijriDate:       payload.HijriDate,
		Day:             payload.Day,
		DailyLesson:     payload.DailyLesson,
		LessonFromVerse: payload.LessonFromVerse,
		LessonToVerse:   payload.LessonToVerse,
		LastFivePages:   payload.LastFivePages,
		DailyReview:     payload.DailyReview,
		ReviewFrom:      payload.ReviewFrom,
		ReviewTo:        payload.ReviewTo,
		PageCount:       payload.PageCount,
		Errors:          payload.Errors,
		Reminders:       payload.Reminders,
		ListenerName:    payload.ListenerName,
		Behavior:        payload.Behavior,
		Other:           payload.Other,
		TotalScore:      payload.TotalScore,
		Notes:           payload.Notes,
		CreatedAt:       time.Now(),
	}
	s.mu.Lock()
	s.seq++
	s.recordSeq[record.ID] = s.seq
	s.dailyRecords[record.ID] = record
	s.mu.Unlock()
	return &record, nil
}

func (s *memoryStorage) UpdateDailyRecord(_ context.Context, id string, patch *domain.DailyRecordPatch) *domain.DailyRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	record, ok := s.dailyRecords[id]
	if !ok {
		return nil
	}
	applyDailyRecordPatch(&record, patch)
	s.dailyRecords[id] = record
	return &record
}

func (s *memoryStorage) DeleteDailyRecord(_ context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.dailyRecords[id]; !ok {
		return false
	}
	delete(s.dailyRecords, id)
	delete(s.recordSeq, id)
	return true
}

// Quran errors

func (s *memoryStorage) GetQuranErrorsByStudent(_ context.Context, studentID string) []domain.QuranError {
	s.mu.RLock()
	defer s.mu.RUnlock()
	quranErrors := make([]domain.QuranError, 0)
	for _, quranError := range s.quranErrors {
		if quranError.StudentID == studentID {
			quranErrors = append(quranErrors, quranError)
		}
	}
	return quranErrors
}

func (s *memoryStorage) CreateQuranError(_ context.Context, payload *domain.InsertQuranError) (*domain.QuranError, error) {
	quranError := domain.QuranError{
		ID:         uuid.NewString(),
		StudentID:  payload.StudentID,
		Surah:      payload.Surah,
		Verse:      payload.Verse,
		PageNumber: payload.PageNumber,
		ErrorType:  payload.ErrorType,
		Position:   payload.Position,
		CreatedAt:  time.Now(),
	}
	s.mu.Lock()
	s.quranErrors[quranError.ID] = quranError
	s.mu.Unlock()
	return &quranError, nil
}

func (s *memoryStorage) DeleteQuranError(_ context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.quranErrors[id]; !ok {
		return false
	}
	delete(s.quranErrors, id)
	return true
}

// Patch application shared with nothing else: the database backends map
// patches to column/$set documents instead.

func applyStudentPatch(student *domain.Student, patch *domain.StudentPatch) {
	if patch == nil {
		return
	}
	if patch.Name != nil {
		student.Name = *patch.Name
	}
	if patch.Age != nil {
		student.Age = *patch.Age
	}
	if patch.Phone != nil {
		student.Phone = patch.Phone
	}
	if patch.Level != nil {
		student.Level = *patch.Level
	}
	if patch.TeacherID != nil {
		student.TeacherID = *patch.TeacherID
	}
	if patch.ParentID != nil {
		student.ParentID = patch.ParentID
	}
}

func applyDailyRecordPatch(record *domain.DailyRecord, patch *domain.DailyRecordPatch) {
	if patch == nil {
		return
	}
	if patch.HijriDate != nil {
		record.HijriDate = *patch.HijriDate
	}
	if patch.Day != nil {
		record.Day = *patch.Day
	}
	if patch.DailyLesson != nil {
		record.DailyLesson = patch.DailyLesson
	}
	if patch.LessonFromVerse != nil {
		record.LessonFromVerse = patch.LessonFromVerse
	}
	if patch.LessonToVerse != nil {
		record.LessonToVerse = patch.LessonToVerse
	}
	if patch.LastFivePages != nil {
		record.LastFivePages = patch.LastFivePages
	}
	if patch.DailyReview != nil {
		record.DailyReview = patch.DailyReview
	}
	if patch.ReviewFrom != nil {
		record.ReviewFrom = patch.ReviewFrom
	}
	if patch.ReviewTo != nil {
		record.ReviewTo = patch.ReviewTo
	}
	if patch.PageCount != nil {
		record.PageCount = patch.PageCount
	}
	if patch.Errors != nil {
		record.Errors = patch.Errors
	}
	if patch.Reminders != nil {
		record.Reminders = patch.Reminders
	}
	if patch.ListenerName != nil {
		record.ListenerName = patch.ListenerName
	}
	if patch.Behavior != nil {
		record.Behavior = patch.Behavior
	}
	if patch.Other != nil {
		record.Other = patch.Other
	}
	if patch.TotalScore != nil {
		record.TotalScore = patch.TotalScore
	}
	if patch.Notes != nil {
		record.Notes = patch.Notes
	}
}
