// Package chat implements FinNova's dialogue router.
//
// Each incoming message is classified by ParseIntent: a message that
// mentions a salary amount takes the deterministic calculator path, every
// other message takes the retrieval+generation path. Both paths append
// exactly one turn to the conversation transcript; only the generation
// path refreshes the rolling conversation summary.
//
// The engine depends on two injected capabilities, Retriever and
// Generator, so the routing logic is testable with deterministic stubs.
// Production wiring uses the knowledge-store retriever and the Gemini
// generator over Genkit.
package chat
