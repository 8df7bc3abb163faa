package handler

import "time"

// TimeFormat is the standard time format for API responses (RFC3339)
const TimeFormat = time.RFC3339

// dateFormat is accepted by date range filters alongside TimeFormat.
const dateFormat = "2006-01-02"

// maxMultipartMemory caps the form bytes held in memory; larger files
// spill to temporary files.
const maxMultipartMemory = 16 << 20
