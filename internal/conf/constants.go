package conf

// DefaultNumberOfBuckets - Number of buckets used when no bucket count is configured
const DefaultNumberOfBuckets int64 = 16

// DefaultMaxLoadFactor - Entries per bucket allowed before the bucket array is doubled
const DefaultMaxLoadFactor float64 = 0.75

// GrowthFactor - Multiplier applied to the number of buckets when the table grows
const GrowthFactor int64 = 2

// NoSlot - Marks an empty bucket head, the end of a chain and the end iterator
const NoSlot int32 = -1

// FirstGeneration - Generation given to a slot the first time it is allocated, zero is never a live generation
const FirstGeneration uint32 = 1
