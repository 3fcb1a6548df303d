// Package subscription implements the external-collaborator sketch spec
// §6 names but does not require: a minimal subscription registry grounded
// on ua_subscription_manager.c, kept out of the polymorphic value core's
// module budget. Manager tracks Subscriptions by ID using the
// copy-on-write slice shape hive/values.List uses for VK references, and
// seeds its session ID counter from an rng.Generator mixed with the
// current time, matching UA_SubscriptionManager's LastSessionID.
package subscription
