// Copyright 2020-2021 Dolthub, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package schema holds the Column and Schema entities shared by the
// expression model and the logical node model.
package schema

import (
	"fmt"

	"github.com/lp-core/logicalplan/types"
)

// Column is a qualified name (qualifier + local name) plus a data
// type. Two columns are equal iff qualifier, name, and type all
// match.
type Column struct {
	Qualifier string
	Name      string
	Type      types.DataType
}

// NewColumn builds a Column.
func NewColumn(qualifier, name string, t types.DataType) Column {
	return Column{Qualifier: qualifier, Name: name, Type: t}
}

// HasQualifier reports whether the column carries an explicit
// qualifier.
func (c Column) HasQualifier() bool {
	return c.Qualifier != ""
}

// QualifiedName returns "qualifier.name", or just "name" if
// unqualified.
func (c Column) QualifiedName() string {
	if c.Qualifier == "" {
		return c.Name
	}
	return fmt.Sprintf("%s.%s", c.Qualifier, c.Name)
}

// Equal compares qualified name and type.
func (c Column) Equal(other Column) bool {
	return c.Qualifier == other.Qualifier && c.Name == other.Name && c.Type == other.Type
}

// WithQualifier returns a copy of c with a different qualifier (used
// by stripTarget-style rewrites).
func (c Column) WithQualifier(qualifier string) Column {
	c.Qualifier = qualifier
	return c
}
