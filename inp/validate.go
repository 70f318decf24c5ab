// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"errors"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/go-playground/validator/v10"
)

// structValidator checks the `validate` tags of input data
var structValidator = validator.New()

// checkStruct runs the tag validation and converts failures into a readable error
func checkStruct(s interface{}) error {
	err := structValidator.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, len(verrs))
	for i, fe := range verrs {
		msgs[i] = io.Sf("  %s: failed on %q (param=%q, value=%v)", fe.Namespace(), fe.Tag(), fe.Param(), fe.Value())
	}
	return chk.Err("%s", strings.Join(msgs, "\n"))
}
