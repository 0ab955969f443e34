package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/collegeportal/internal/app/models/dto"
	"github.com/yigit/collegeportal/internal/pkg/apperrors"
)

func TestAddMarkValidation(t *testing.T) {
	svc := newFixture().academicService()

	tests := []struct {
		name string
		form dto.AddMarkForm
		want string
	}{
		{"no student", dto.AddMarkForm{Subject: "Math", Semester: 1}, "Student is required"},
		{"no subject", dto.AddMarkForm{StudentID: 1, Semester: 1}, "Subject is required"},
		{"blank subject", dto.AddMarkForm{StudentID: 1, Subject: "  ", Semester: 1}, "Subject is required"},
		{"zero semester", dto.AddMarkForm{StudentID: 1, Subject: "Math"}, "Semester must be a positive number"},
		{"negative score", dto.AddMarkForm{StudentID: 1, Subject: "Math", Semester: 1, Score: -1}, "Score cannot be negative"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.AddMark(context.Background(), tt.form)
			require.ErrorIs(t, err, apperrors.ErrValidationFailed)
			assert.Equal(t, tt.want, apperrors.UserMessage(err, ""))
		})
	}
}

func TestMarkLifecycle(t *testing.T) {
	f := newFixture()
	st := f.addStudent(t, "jane", "")
	svc := f.academicService()

	mark, err := svc.AddMark(context.Background(), dto.AddMarkForm{StudentID: st.ID, Subject: " Math ", Semester: 1, Score: 70})
	require.NoError(t, err)
	assert.Equal(t, "Math", mark.Subject)

	require.NoError(t, svc.UpdateMark(context.Background(), dto.UpdateMarkForm{MarkID: mark.ID, Subject: "Math", Semester: 2, Score: 88}))
	marks, err := f.marks.ListByStudent(context.Background(), st.ID)
	require.NoError(t, err)
	require.Len(t, marks, 1)
	assert.Equal(t, 2, marks[0].Semester)
	assert.Equal(t, 88.0, marks[0].Score)

	err = svc.UpdateMark(context.Background(), dto.UpdateMarkForm{MarkID: 999, Subject: "Math", Semester: 1})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	require.NoError(t, svc.DeleteMark(context.Background(), mark.ID))
	require.NoError(t, svc.DeleteMark(context.Background(), mark.ID))
	marks, _ = f.marks.ListByStudent(context.Background(), st.ID)
	assert.Empty(t, marks)
}

func TestAddPlacementParsesOptionalFields(t *testing.T) {
	f := newFixture()
	st := f.addStudent(t, "jane", "")
	svc := f.academicService()

	p, err := svc.AddPlacement(context.Background(), dto.AddPlacementForm{StudentID: st.ID, Company: "Acme", Role: "Dev"})
	require.NoError(t, err)
	assert.Nil(t, p.Salary)
	assert.Nil(t, p.DatePlaced)
	assert.False(t, p.IsAccepted)

	p, err = svc.AddPlacement(context.Background(), dto.AddPlacementForm{
		StudentID: st.ID, Company: "Globex", Role: "Analyst", Salary: "72000.50", DatePlaced: "2024-06-01",
	})
	require.NoError(t, err)
	assert.Equal(t, 72000.50, *p.Salary)
	assert.Equal(t, "2024-06-01", p.DatePlaced.Format("2006-01-02"))

	_, err = svc.AddPlacement(context.Background(), dto.AddPlacementForm{StudentID: st.ID, Company: "Acme", Role: "Dev", Salary: "lots"})
	require.ErrorIs(t, err, apperrors.ErrValidationFailed)
	assert.Equal(t, "Salary must be a number", apperrors.UserMessage(err, ""))

	_, err = svc.AddPlacement(context.Background(), dto.AddPlacementForm{StudentID: st.ID, Company: "Acme", Role: "Dev", DatePlaced: "June"})
	assert.Equal(t, "Invalid placement date", apperrors.UserMessage(err, ""))

	_, err = svc.AddPlacement(context.Background(), dto.AddPlacementForm{StudentID: st.ID, Company: "   ", Role: "Dev"})
	assert.Equal(t, "Company is required", apperrors.UserMessage(err, ""))

	p, err = svc.AddPlacement(context.Background(), dto.AddPlacementForm{StudentID: st.ID, Company: " Initech ", Role: " QA ", Salary: " 500 "})
	require.NoError(t, err)
	assert.Equal(t, "Initech", p.Company)
	assert.Equal(t, "QA", p.Role)
	assert.Equal(t, 500.0, *p.Salary)
}

func TestSetPlacementAcceptedKeepsOneAccepted(t *testing.T) {
	f := newFixture()
	st := f.addStudent(t, "jane", "")
	other := f.addStudent(t, "john", "")
	svc := f.academicService()

	first, err := svc.AddPlacement(context.Background(), dto.AddPlacementForm{StudentID: st.ID, Company: "Acme", Role: "Dev"})
	require.NoError(t, err)
	second, err := svc.AddPlacement(context.Background(), dto.AddPlacementForm{StudentID: st.ID, Company: "Globex", Role: "Dev"})
	require.NoError(t, err)
	foreign, err := svc.AddPlacement(context.Background(), dto.AddPlacementForm{StudentID: other.ID, Company: "Initech", Role: "Dev"})
	require.NoError(t, err)

	accepted := func() map[int64]bool {
		out := map[int64]bool{}
		for _, id := range []int64{st.ID, other.ID} {
			ps, err := f.placements.ListByStudent(context.Background(), id)
			require.NoError(t, err)
			for _, p := range ps {
				out[p.ID] = p.IsAccepted
			}
		}
		return out
	}

	require.NoError(t, svc.SetPlacementAccepted(context.Background(), dto.PlacementAcceptedForm{PlacementID: foreign.ID, StudentID: other.ID, IsAccepted: "on"}))
	require.NoError(t, svc.SetPlacementAccepted(context.Background(), dto.PlacementAcceptedForm{PlacementID: first.ID, StudentID: st.ID, IsAccepted: "on"}))
	require.NoError(t, svc.SetPlacementAccepted(context.Background(), dto.PlacementAcceptedForm{PlacementID: second.ID, StudentID: st.ID, IsAccepted: "on"}))
	assert.Equal(t, map[int64]bool{first.ID: false, second.ID: true, foreign.ID: true}, accepted())

	require.NoError(t, svc.SetPlacementAccepted(context.Background(), dto.PlacementAcceptedForm{PlacementID: second.ID, StudentID: st.ID}))
	assert.Equal(t, map[int64]bool{first.ID: false, second.ID: false, foreign.ID: true}, accepted())

	err = svc.SetPlacementAccepted(context.Background(), dto.PlacementAcceptedForm{PlacementID: foreign.ID, StudentID: st.ID, IsAccepted: "on"})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.True(t, accepted()[foreign.ID])
}

func TestPlacementUpdateAndDelete(t *testing.T) {
	f := newFixture()
	st := f.addStudent(t, "jane", "")
	svc := f.academicService()

	p, err := svc.AddPlacement(context.Background(), dto.AddPlacementForm{StudentID: st.ID, Company: "Acme", Role: "Dev", Salary: "100"})
	require.NoError(t, err)

	require.NoError(t, svc.UpdatePlacement(context.Background(), dto.UpdatePlacementForm{PlacementID: p.ID, Company: "Acme Corp", Role: "Lead"}))
	ps, _ := f.placements.ListByStudent(context.Background(), st.ID)
	require.Len(t, ps, 1)
	assert.Equal(t, "Acme Corp", ps[0].Company)
	assert.Nil(t, ps[0].Salary)

	err = svc.UpdatePlacement(context.Background(), dto.UpdatePlacementForm{PlacementID: 999, Company: "X", Role: "Y"})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	require.NoError(t, svc.DeletePlacement(context.Background(), p.ID))
	ps, _ = f.placements.ListByStudent(context.Background(), st.ID)
	assert.Empty(t, ps)

	assert.ErrorIs(t, svc.DeletePlacement(context.Background(), 0), apperrors.ErrValidationFailed)
}
