package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/lintang-b-s/roadgraph/pkg/util"
	"go.uber.org/zap"
)

type envelope map[string]interface{}

func (api *routingAPI) writeJSON(w http.ResponseWriter, status int, data envelope, headers http.Header) error {
	js, err := json.Marshal(data)
	if err != nil {
		return err
	}
	js = append(js, '\n')

	for key, value := range headers {
		w.Header()[key] = value
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, err = w.Write(js)
	return err
}

func (api *routingAPI) errorResponse(w http.ResponseWriter, r *http.Request, status int, message string) {
	env := envelope{"error": map[string]string{
		"code":    http.StatusText(status),
		"message": message,
	}}
	if err := api.writeJSON(w, status, env, nil); err != nil {
		api.log.Error("write error response", zap.Error(err), zap.String("path", r.URL.Path))
		w.WriteHeader(http.StatusInternalServerError)
	}
}

func (api *routingAPI) ServerErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	api.log.Error("internal server error", zap.Error(err), zap.String("method", r.Method),
		zap.String("path", r.URL.Path))
	api.errorResponse(w, r, http.StatusInternalServerError, util.MessageInternalServerError)
}

func (api *routingAPI) BadRequestResponse(w http.ResponseWriter, r *http.Request, err error) {
	api.errorResponse(w, r, http.StatusBadRequest, err.Error())
}

func (api *routingAPI) NotFoundResponse(w http.ResponseWriter, r *http.Request, err error) {
	api.errorResponse(w, r, http.StatusNotFound, err.Error())
}

func (api *routingAPI) ConflictResponse(w http.ResponseWriter, r *http.Request, err error) {
	api.errorResponse(w, r, http.StatusConflict, err.Error())
}

// getStatusCode writes the error response matching err's util error code.
func (api *routingAPI) getStatusCode(w http.ResponseWriter, r *http.Request, err error) {
	switch util.ErrorCode(err) {
	case util.ErrNotFound:
		api.NotFoundResponse(w, r, err)
	case util.ErrBadParamInput:
		api.BadRequestResponse(w, r, err)
	case util.ErrConflict:
		api.ConflictResponse(w, r, err)
	default:
		api.ServerErrorResponse(w, r, err)
	}
}

func validateRequest(request interface{}) error {
	validate := validator.New()
	err := validate.Struct(request)
	if err == nil {
		return nil
	}
	english := en.New()
	uni := ut.New(english, english)
	trans, _ := uni.GetTranslator("en")
	_ = enTranslations.RegisterDefaultTranslations(validate, trans)
	vv := translateError(err, trans)
	vvString := []string{}
	for _, v := range vv {
		vvString = append(vvString, v.Error())
	}
	return fmt.Errorf("validation error: %v", vvString)
}

func translateError(err error, trans ut.Translator) (errs []error) {
	if err == nil {
		return nil
	}
	var validatorErrs validator.ValidationErrors
	if !errors.As(err, &validatorErrs) {
		return []error{err}
	}
	for _, e := range validatorErrs {
		errs = append(errs, errors.New(e.Translate(trans)))
	}
	return errs
}
