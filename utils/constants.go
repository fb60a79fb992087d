package utils

import "time"

// IntentLockPrefix is the prefix used for Redis payment intent lock keys.
const IntentLockPrefix = "booking:intent-lock:"

// DefaultIntentLockTTL bounds how long a crashed reconciliation can hold an intent.
const DefaultIntentLockTTL = 30 * time.Second
