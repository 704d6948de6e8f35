package handler

// APIV1Prefix is the single source of truth for the public v1 base path.
// Handlers and tests both build URLs from it so the prefix never drifts.
const APIV1Prefix = "/api/v1"
