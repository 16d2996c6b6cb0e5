package validation

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"KanbanWebService/commands"
	"KanbanWebService/models"
)

var messages = map[string]string{
	"fieldValidator":  "must not be empty",
	"statusValidator": "must be one of: pendentes, em-andamento, em-analise, pausado, concluidas",
}

// Validator turns raw request bodies into validated store inputs.
type Validator struct {
	validate   *validator.Validate
	taskSchema *jsonschema.Schema
	teamSchema *jsonschema.Schema
	loc        *time.Location
}

// New builds a Validator. loc is the zone used for deadlines given without an offset.
func New(loc *time.Location) (*Validator, error) {
	if loc == nil {
		loc = time.UTC
	}

	validate := validator.New()
	if err := validate.RegisterValidation("fieldValidator", FieldValidator); err != nil {
		return nil, fmt.Errorf("register fieldValidator: %w", err)
	}
	if err := validate.RegisterValidation("statusValidator", StatusValidator); err != nil {
		return nil, fmt.Errorf("register statusValidator: %w", err)
	}
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	taskSchema, err := compileSchema(taskSchemaURL, taskSchema)
	if err != nil {
		return nil, err
	}
	teamSchema, err := compileSchema(teamSchemaURL, teamSchema)
	if err != nil {
		return nil, err
	}

	return &Validator{
		validate:   validate,
		taskSchema: taskSchema,
		teamSchema: teamSchema,
		loc:        loc,
	}, nil
}

// DecodeCreateTask validates a POST /tasks body.
func (v *Validator) DecodeCreateTask(body []byte) (models.NewTask, error) {
	var cmd commands.CreateTaskCommand
	verr, err := v.decode(body, v.taskSchema, &cmd)
	if err != nil {
		return models.NewTask{}, err
	}
	return v.createTask(cmd, verr)
}

// DecodeUpdateTask validates a PATCH /tasks/{id} body.
func (v *Validator) DecodeUpdateTask(body []byte) (models.TaskPatch, error) {
	var cmd commands.UpdateTaskCommand
	verr, err := v.decode(body, v.taskSchema, &cmd)
	if err != nil {
		return models.TaskPatch{}, err
	}
	return v.updateTask(cmd, verr)
}

// DecodeCreateTeam validates a POST /teams body.
func (v *Validator) DecodeCreateTeam(body []byte) (models.NewTeam, error) {
	var cmd commands.CreateTeamCommand
	verr, err := v.decode(body, v.teamSchema, &cmd)
	if err != nil {
		return models.NewTeam{}, err
	}
	return v.createTeam(cmd, verr)
}

// decode fills dst from body. Fields rejected by the schema are recorded in
// the returned Error and left out of dst, so the field rules still run on
// the rest of the body. A non-nil error means nothing could be decoded.
func (v *Validator) decode(body []byte, schema *jsonschema.Schema, dst any) (*Error, error) {
	verr := &Error{}

	var doc any
	if err := json.Unmarshal(body, &doc); err != nil {
		verr.add("body", "must be valid JSON")
		return nil, verr
	}
	if err := schema.Validate(doc); err != nil {
		schemaErr, ok := err.(*jsonschema.ValidationError)
		if !ok {
			return nil, fmt.Errorf("validate against schema: %w", err)
		}
		collectSchemaErrors(verr, schemaErr)

		obj, ok := doc.(map[string]any)
		if !ok || verr.Has("body") {
			return nil, verr
		}
		for _, f := range verr.Fields {
			delete(obj, f.Field)
		}
		if body, err = json.Marshal(obj); err != nil {
			return nil, fmt.Errorf("encode accepted fields: %w", err)
		}
	}
	if err := json.Unmarshal(body, dst); err != nil {
		verr.add("body", err.Error())
		return nil, verr
	}
	return verr, nil
}

// CreateTask applies the create rules to a decoded command.
func (v *Validator) CreateTask(cmd commands.CreateTaskCommand) (models.NewTask, error) {
	return v.createTask(cmd, &Error{})
}

func (v *Validator) createTask(cmd commands.CreateTaskCommand, verr *Error) (models.NewTask, error) {
	cmd.Title = strings.TrimSpace(cmd.Title)
	cmd.OSNumber = strings.TrimSpace(cmd.OSNumber)
	cmd.Team = strings.TrimSpace(cmd.Team)

	v.checkStruct(verr, cmd)

	var deadline *time.Time
	if cmd.Deadline != nil {
		d, err := ParseDeadline(*cmd.Deadline, v.loc)
		if err != nil {
			verr.add("deadline", err.Error())
		}
		deadline = d
	}
	if err := verr.orNil(); err != nil {
		return models.NewTask{}, err
	}

	status := models.Status(cmd.Status)
	if status == "" {
		status = models.StatusPending
	}
	return models.NewTask{
		Title:          cmd.Title,
		Description:    nonEmpty(cmd.Description),
		OSNumber:       cmd.OSNumber,
		Deadline:       deadline,
		EstimatedHours: nonEmpty(cmd.EstimatedHours),
		Team:           cmd.Team,
		Status:         status,
	}, nil
}

// UpdateTask applies the partial update rules to a decoded command.
func (v *Validator) UpdateTask(cmd commands.UpdateTaskCommand) (models.TaskPatch, error) {
	return v.updateTask(cmd, &Error{})
}

func (v *Validator) updateTask(cmd commands.UpdateTaskCommand, verr *Error) (models.TaskPatch, error) {
	cmd.Title = trimPtr(cmd.Title)
	cmd.OSNumber = trimPtr(cmd.OSNumber)
	cmd.Team = trimPtr(cmd.Team)

	v.checkStruct(verr, cmd)

	patch := models.TaskPatch{
		Title:          cmd.Title,
		OSNumber:       cmd.OSNumber,
		Team:           cmd.Team,
		Description:    clearable(cmd.Description),
		EstimatedHours: clearable(cmd.EstimatedHours),
	}
	if cmd.Status != nil {
		status := models.Status(*cmd.Status)
		patch.Status = &status
	}
	if cmd.Deadline.Set {
		patch.Deadline = models.Null[time.Time]()
		if cmd.Deadline.Value != nil {
			d, err := ParseDeadline(*cmd.Deadline.Value, v.loc)
			if err != nil {
				verr.add("deadline", err.Error())
			}
			if d != nil {
				patch.Deadline = models.Some(*d)
			}
		}
	}
	if err := verr.orNil(); err != nil {
		return models.TaskPatch{}, err
	}
	return patch, nil
}

// CreateTeam applies the team rules to a decoded command.
func (v *Validator) CreateTeam(cmd commands.CreateTeamCommand) (models.NewTeam, error) {
	return v.createTeam(cmd, &Error{})
}

func (v *Validator) createTeam(cmd commands.CreateTeamCommand, verr *Error) (models.NewTeam, error) {
	cmd.Name = strings.TrimSpace(cmd.Name)
	cmd.ColorClass = strings.TrimSpace(cmd.ColorClass)

	v.checkStruct(verr, cmd)
	if err := verr.orNil(); err != nil {
		return models.NewTeam{}, err
	}
	return models.NewTeam{Name: cmd.Name, ColorClass: cmd.ColorClass}, nil
}

func (v *Validator) checkStruct(verr *Error, s any) {
	err := v.validate.Struct(s)
	if err == nil {
		return
	}
	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		verr.add("body", err.Error())
		return
	}
	for _, fe := range fieldErrs {
		msg, ok := messages[fe.Tag()]
		if !ok {
			msg = "failed on the " + fe.Tag() + " rule"
		}
		verr.add(fe.Field(), msg)
	}
}

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	return &trimmed
}

// nonEmpty maps an empty optional string to absent.
func nonEmpty(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}

func clearable(o models.Optional[string]) models.Optional[string] {
	if !o.Set {
		return o
	}
	if v := nonEmpty(o.Value); v != nil {
		return models.Some(*v)
	}
	return models.Null[string]()
}
