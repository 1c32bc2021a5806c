package flags

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/jessevdk/go-flags"
)

// ErrHelp is returned when the user asked for the help message, which has already been printed.
var ErrHelp = errors.New("help requested")

// ParseArgs parses the given args (without the program name) into opts, returning the remaining positional args.
func ParseArgs(opts any, args []string) ([]string, error) {
	if err := allocateGroups(opts); err != nil {
		return nil, err
	}
	rest, err := flags.ParseArgs(opts, args)
	if err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			return nil, ErrHelp
		}
		return nil, fmt.Errorf("parsing flags: %w", err)
	}
	return rest, nil
}

// Allocates nil pointer-to-struct fields so option groups such as *logging.Opts are always usable.
func allocateGroups(obj any) error {
	v := reflect.ValueOf(obj)
	if v.Kind() != reflect.Ptr || v.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("opts must be a pointer to a struct, got %T", obj)
	}
	v = v.Elem()
	t := v.Type()
	for i := 0; i < v.NumField(); i++ {
		field := t.Field(i)
		value := v.Field(i)
		if !field.IsExported() || value.Kind() != reflect.Ptr || value.Type().Elem().Kind() != reflect.Struct {
			continue
		}
		if value.IsNil() {
			value.Set(reflect.New(value.Type().Elem()))
		}
		if err := allocateGroups(value.Interface()); err != nil {
			return fmt.Errorf(field.Name+": %w", err)
		}
	}
	return nil
}
