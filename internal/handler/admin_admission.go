package handler

import (
	"encoding/csv"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/school-admin/internal/model"
	"github.com/iliyamo/school-admin/internal/validation"
)

func gradeParam(c echo.Context) (string, error) {
	grade := c.QueryParam("grade")
	if grade == "" || grade == model.FilterAll || model.HasValue(model.GradeOptions, grade) {
		return grade, nil
	}
	return "", validation.NewError("grade", "Unknown grade filter")
}

// ListAdmissions filters by ?grade= bucket and ?q= on names and email.
func (h *AdminHandler) ListAdmissions(c echo.Context) error {
	grade, err := gradeParam(c)
	if err != nil {
		return err
	}
	list, err := h.Admissions.Find(c.Request().Context(), grade, c.QueryParam("q"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items(list))
}

func (h *AdminHandler) GetAdmission(c echo.Context) error {
	a, err := h.Admissions.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, a)
}

// admissionCSVHeader lists the fixed columns followed by the detail keys.
func admissionCSVHeader() []string {
	head := []string{"id", "studentName", "parentName", "grade", "email", "phone", "submittedAt", "status"}
	return append(head, model.AdmissionDetailKeys...)
}

func admissionCSVRow(a model.AdmissionSubmission) []string {
	row := []string{a.ID, a.StudentName, a.ParentName, a.Grade, a.Email, a.Phone, a.SubmittedAt, a.Status}
	for _, k := range model.AdmissionDetailKeys {
		row = append(row, a.Details[k])
	}
	return row
}

// ExportAdmissions streams the filtered submissions as CSV.
func (h *AdminHandler) ExportAdmissions(c echo.Context) error {
	grade, err := gradeParam(c)
	if err != nil {
		return err
	}
	list, err := h.Admissions.Find(c.Request().Context(), grade, c.QueryParam("q"))
	if err != nil {
		return err
	}

	res := c.Response()
	res.Header().Set(echo.HeaderContentType, "text/csv; charset=utf-8")
	res.Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", "admissions-"+model.Today(h.now())+".csv"))
	res.WriteHeader(http.StatusOK)

	w := csv.NewWriter(res)
	if err := w.Write(admissionCSVHeader()); err != nil {
		return err
	}
	for _, a := range list {
		if err := w.Write(admissionCSVRow(a)); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
