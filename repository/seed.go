package repository

import (
	"context"
	"log"

	"halaqat/domain"
)

// SeedTeachers is the fixed circle roster provisioned on first boot. The
// in-memory backend always starts with it; the database backends get it only
// when their teachers table/collection is empty.
var SeedTeachers = []domain.InsertTeacher{
	// Men's circles
	{Username: "abdalrazaq", Password: "123456", Name: "أ. عبدالرزاق", Gender: domain.GenderMale, CircleName: "حلقة عبدالرزاق"},
	{Username: "ibrahim", Password: "123456", Name: "أ. إبراهيم كدوائي", Gender: domain.GenderMale, CircleName: "حلقة إبراهيم كدوائي"},
	{Username: "hassan", Password: "123456", Name: "أ. حسن", Gender: domain.GenderMale, CircleName: "حلقة حسن"},
	{Username: "saud", Password: "123456", Name: "أ. سعود", Gender: domain.GenderMale, CircleName: "حلقة سعود"},
	{Username: "saleh", Password: "123456", Name: "أ. صالح", Gender: domain.GenderMale, CircleName: "حلقة صالح"},
	{Username: "abdullah", Password: "123456", Name: "أ. عبدالله", Gender: domain.GenderMale, CircleName: "حلقة عبدالله"},
	{Username: "nabil", Password: "123456", Name: "أ. نبيل", Gender: domain.GenderMale, CircleName: "حلقة نبيل"},

	// Women's circles
	{Username: "asma", Password: "123456", Name: "أ. أسماء", Gender: domain.GenderFemale, CircleName: "حلقة أسماء"},
	{Username: "raghad", Password: "123456", Name: "أ. رغد", Gender: domain.GenderFemale, CircleName: "حلقة رغد"},
	{Username: "madina", Password: "123456", Name: "أ. مدينة", Gender: domain.GenderFemale, CircleName: "حلقة مدينة"},
	{Username: "nashwa", Password: "123456", Name: "أ. نشوة", Gender: domain.GenderFemale, CircleName: "حلقة نشوة"},
	{Username: "nour", Password: "123456", Name: "أ. نور", Gender: domain.GenderFemale, CircleName: "حلقة نور"},
	{Username: "hind", Password: "123456", Name: "أ. هند", Gender: domain.GenderFemale, CircleName: "حلقة هند"},
}

var seedParents = []domain.InsertParent{
	{Username: "parent1", Password: "123456", FatherName: "أحمد محمد الأحمد", MotherName: strPtr("فاطمة علي"), Phone: "0505123456", Email: strPtr("ahmed@example.com")},
	{Username: "parent2", Password: "123456", FatherName: "محمد عبدالله السعد", MotherName: strPtr("عائشة يوسف"), Phone: "0505234567", Email: strPtr("mohammed@example.com")},
	{Username: "parent3", Password: "123456", FatherName: "علي حسن الخالد", MotherName: strPtr("خديجة أحمد"), Phone: "0505345678", Email: strPtr("ali@example.com")},
	{Username: "parent4", Password: "123456", FatherName: "يوسف إبراهيم النور", MotherName: strPtr("زينب محمد"), Phone: "0505456789", Email: strPtr("youssef@example.com")},
	{Username: "parent5", Password: "123456", FatherName: "عبدالرحمن صالح الريس", MotherName: strPtr("أم كلثوم"), Phone: "0505567890", Email: strPtr("abdulrahman@example.com")},
}

type seedStudent struct {
	name          string
	age           int
	level         string
	parentIndex   int
	teacherGender string
}

var seedStudents = []seedStudent{
	{"عبدالله أحمد", 8, domain.LevelBeginner, 0, domain.GenderMale},
	{"فاطمة أحمد", 10, domain.LevelIntermediate, 0, domain.GenderFemale},
	{"محمد عبدالله", 12, domain.LevelAdvanced, 1, domain.GenderMale},
	{"عائشة محمد", 9, domain.LevelBeginner, 1, domain.GenderFemale},
	{"علي حسن", 11, domain.LevelIntermediate, 2, domain.GenderMale},
	{"خديجة علي", 7, domain.LevelBeginner, 2, domain.GenderFemale},
	{"يوسف إبراهيم", 13, domain.LevelAdvanced, 3, domain.GenderMale},
	{"زينب يوسف", 8, domain.LevelBeginner, 3, domain.GenderFemale},
	{"عبدالرحمن صالح", 10, domain.LevelIntermediate, 4, domain.GenderMale},
}

// EnsureTeachersSeeded provisions the fixed roster when the backend has no
// teachers yet. Safe to call on every boot.
func EnsureTeachersSeeded(ctx context.Context, store domain.Storage) {
	if len(store.GetAllTeachers(ctx)) > 0 {
		return
	}

	seeded := 0
	for i := range SeedTeachers {
		payload := SeedTeachers[i]
		if _, err := store.CreateTeacher(ctx, &payload); err != nil {
			log.Printf("⚠️  Failed to seed teacher %s: %v", payload.Username, err)
			continue
		}
		seeded++
	}
	log.Printf("✅ Seeded %d teachers", seeded)
}

func strPtr(s string) *string { return &s }
