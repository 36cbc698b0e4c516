// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package settings

import (
	"fmt"
	"reflect"
	"strconv"
)

// Defaults sets values of fields in the given struct pointer based on
// `def:` default value field tags. Only string, bool and integer fields
// are supported; other kinds with a tag return an error.
func Defaults(obj any) error {
	val := reflect.ValueOf(obj)
	if val.Kind() != reflect.Pointer || val.IsNil() {
		return nil
	}
	val = val.Elem()
	typ := val.Type()
	var err error
	for i := 0; i < typ.NumField(); i++ {
		f := typ.Field(i)
		def, ok := f.Tag.Lookup("def")
		if !ok || def == "" {
			continue
		}
		if serr := setString(val.Field(i), def); serr != nil {
			err = fmt.Errorf("settings.Defaults: was not able to set field: %s in object of type: %s from val: %s: %w", f.Name, typ.Name(), def, serr)
		}
	}
	return err
}

func setString(fv reflect.Value, s string) error {
	switch fv.Kind() {
	case reflect.String:
		fv.SetString(s)
	case reflect.Bool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return err
		}
		fv.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return err
		}
		fv.SetInt(n)
	default:
		return fmt.Errorf("unsupported kind %v", fv.Kind())
	}
	return nil
}
