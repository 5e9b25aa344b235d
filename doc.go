/*
Package corsflow classifies hypothetical browser requests according to how
[Cross-Origin Resource Sharing (CORS)] would resolve them.

A [Request] describes a request along four dimensions only: its method
(one of GET, POST, PUT, and DELETE), whether it is [same-origin],
whether the server's response would grant cross-origin access
(i.e. carry an [Access-Control-Allow-Origin] header),
and whether the request carries some header outside the
[CORS-safelisted request headers] (e.g. Authorization).
[Classify] maps such a description to an [Outcome]: one of five [Result]
values, an ordered sequence of [Step] cues, and a human-readable explanation.

Classification follows a fixed decision table, evaluated in order:

  - Same-origin requests are always allowed; no CORS check takes place.
  - A cross-origin request is [simple] if its method is GET or POST and it
    carries no custom header. Simple requests are sent directly;
    the browser then exposes the response to the script
    if and only if CORS is enabled.
  - Any other cross-origin request requires a [CORS-preflight] check.
    If CORS is enabled, the preflight succeeds and the actual request is
    sent; otherwise, the actual request is never sent.

Classification is deterministic and has no side effects.
Outcomes are immutable values; structurally equal requests yield equal
outcomes, which can be compared with ==.

Step cues are opaque tokens meant to drive a presentation timeline
(an animation, a textual walkthrough, etc.); this package attaches no timing
or visual meaning to them.

This package deliberately does not model credentialed requests,
preflight caching, origin patterns, or header values.
For actual CORS middleware, see [github.com/jub0bs/cors].

[Access-Control-Allow-Origin]: https://developer.mozilla.org/en-US/docs/Web/HTTP/Headers/Access-Control-Allow-Origin
[CORS-preflight]: https://developer.mozilla.org/en-US/docs/Glossary/Preflight_request
[CORS-safelisted request headers]: https://fetch.spec.whatwg.org/#cors-safelisted-request-header
[Cross-Origin Resource Sharing (CORS)]: https://developer.mozilla.org/en-US/docs/Web/HTTP/CORS
[same-origin]: https://developer.mozilla.org/en-US/docs/Web/Security/Same-origin_policy
[simple]: https://developer.mozilla.org/en-US/docs/Web/HTTP/CORS#simple_requests
*/
package corsflow
