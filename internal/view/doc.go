// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package view computes the derived view of a user's item collection:
// the filtered, searched and ordered sequence a client renders, together with
// the small presentation helpers (palette, deadline urgency, progress, report)
// shared by the todo and notes presentations and by the server report endpoint.
//
// Everything in this package is pure. Functions never mutate their inputs and
// never fail on missing optional fields.
package view
