package models

// Pointer helpers for the optional numeric fields.

func IntPtr(v int) *int { return &v }

func FloatPtr(v float64) *float64 { return &v }
